// Package domain holds DTOs for analyze http and service contracts
package domain

// TextInput is the body of both scoring endpoints
type TextInput struct {
	Text string `json:"text" validate:"required,notblank"`
}

// PredictResult is the single-text verdict plus echo metadata
type PredictResult struct {
	// Text is the input preview, first 100 characters plus "..." when longer
	Text          string  `json:"text"`
	AIProbability float64 `json:"ai_probability"`
	Prediction    string  `json:"prediction"`
	Confidence    string  `json:"confidence"`
	CharCount     int     `json:"char_count"`
}

// OverallAnalysis is the whole-document verdict of a paragraph analysis
type OverallAnalysis struct {
	FullTextProbability float64 `json:"full_text_probability"`
	Prediction          string  `json:"prediction"`
	Confidence          string  `json:"confidence"`
}

// ParagraphAnalysis is one paragraph and its raw probability
type ParagraphAnalysis struct {
	Text          string  `json:"text"`
	AIProbability float64 `json:"ai_probability"`
}

// AnalysisResult is the paragraph analysis response
type AnalysisResult struct {
	OverallAnalysis   OverallAnalysis     `json:"overall_analysis"`
	ParagraphAnalysis []ParagraphAnalysis `json:"paragraph_analysis"`
	ParagraphAverage  float64             `json:"paragraph_average"`
}
