package testkit

import (
	"strings"
	"testing"
)

var threshold = 0.5

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &threshold, 0.9)
		if threshold != 0.9 {
			t.Fatalf("threshold = %v", threshold)
		}
	})
	if threshold != 0.5 {
		t.Fatalf("not restored: %v", threshold)
	}
}

func TestSerial_ReleasesOnCleanup(t *testing.T) {
	for i := 0; i < 3; i++ {
		t.Run("", func(t *testing.T) { Serial(t) })
	}
}

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("model missing") })
}

func TestMustContain(t *testing.T) {
	MustContain(t, strings.Repeat("x", 600)+"ai_probability", "ai_probability")
}

func TestDecodeJSON(t *testing.T) {
	got := DecodeJSON[map[string]float64](t, []byte(`{"ai_probability":0.91}`))
	if got["ai_probability"] != 0.91 {
		t.Fatalf("got %v", got)
	}
}
