package strings

import (
	"testing"

	"aidetect/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"*"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("nil: %v", got)
	}
	if got := IfEmpty([]string{"https://app.example"}, def); got[0] != "https://app.example" {
		t.Fatalf("set: %v", got)
	}
}

func TestMustString(t *testing.T) {
	if MustString("analyze", "module name") != "analyze" {
		t.Fatal("value changed")
	}
	testkit.MustPanic(t, func() { MustString(" \t", "module name") })
}

func TestMustPrefix(t *testing.T) {
	for in, want := range map[string]string{
		"history":     "/history",
		"/stats/":     "/stats",
		" /history ":  "/history",
		"//meta//":    "/meta",
		"stats/daily": "/stats/daily",
	} {
		if got := MustPrefix(in); got != want {
			t.Errorf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	testkit.MustPanic(t, func() { MustPrefix(" / ") })
}
