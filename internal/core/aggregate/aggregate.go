// Package aggregate combines a whole-document verdict with per-paragraph scores
package aggregate

import (
	"errors"
	"fmt"

	"aidetect/internal/core/paragraph"
	"aidetect/internal/core/verdict"
)

// ErrCountMismatch is returned when scores do not line up with paragraphs
var ErrCountMismatch = errors.New("aggregate: paragraph and score counts differ")

// Paragraph pairs a paragraph with its raw probability
// no label or tier is derived per paragraph
type Paragraph struct {
	Index       int
	Text        string
	Probability float64
}

// Result is the batch analysis outcome
type Result struct {
	Overall    verdict.Verdict
	Paragraphs []Paragraph
	Average    float64
}

// Combine zips units with probs in order and computes the paragraph average
func Combine(overall verdict.Verdict, units []paragraph.Unit, probs []float64) (Result, error) {
	if len(units) != len(probs) {
		return Result{}, fmt.Errorf("%w: %d paragraphs, %d scores", ErrCountMismatch, len(units), len(probs))
	}
	paras := make([]Paragraph, len(units))
	for i, u := range units {
		paras[i] = Paragraph{Index: u.Index, Text: u.Text, Probability: probs[i]}
	}
	return Result{
		Overall:    overall,
		Paragraphs: paras,
		Average:    Mean(probs),
	}, nil
}

// Mean is the arithmetic mean, exactly 0 for an empty slice
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
