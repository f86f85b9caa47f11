package paragraph

import (
	"reflect"
	"testing"
)

func TestSplit_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  []string
	}{
		{name: "empty", in: "", out: []string{}},
		{name: "all whitespace", in: " \n\t\n  \r\n ", out: []string{}},
		{name: "single line", in: "  Hello world  ", out: []string{"Hello world"}},
		{name: "single newline keeps one paragraph", in: "line one\nline two", out: []string{"line one\nline two"}},
		{name: "blank line splits", in: "Para one.\n\nPara two.", out: []string{"Para one.", "Para two."}},
		{name: "blank line with spaces", in: "a\n   \t\nb", out: []string{"a", "b"}},
		{name: "many blank lines", in: "a\n\n\n\n\nb\n\nc", out: []string{"a", "b", "c"}},
		{name: "crlf", in: "a\r\n\r\nb", out: []string{"a", "b"}},
		{name: "leading and trailing blanks", in: "\n\n\nfirst\n\nsecond\n\n\n", out: []string{"first", "second"}},
		{name: "unicode text", in: "첫 번째 문단입니다.\n\n두 번째 문단입니다.", out: []string{"첫 번째 문단입니다.", "두 번째 문단입니다."}},
		{name: "inner spaces preserved", in: "a  b\n\nc\td", out: []string{"a  b", "c\td"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(tc.in)
			if !reflect.DeepEqual(got, tc.out) {
				t.Fatalf("Split(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestSplit_NoBlankLineIsTrimmedDocument(t *testing.T) {
	doc := "\t one paragraph\nwith a soft break \n"
	got := Split(doc)
	if len(got) != 1 || got[0] != "one paragraph\nwith a soft break" {
		t.Fatalf("got %q", got)
	}
}

func TestSplit_Idempotent(t *testing.T) {
	docs := []string{
		"Para one.\n\nPara two.",
		"  x \n \n y\n\n\n\tz  ",
		"solo",
		"a\nb\n\nc\r\n\r\nd",
		"\n\n",
	}
	for _, d := range docs {
		first := Split(d)
		again := Split(Join(first))
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("not idempotent for %q: %q vs %q", d, first, again)
		}
	}
}

func TestUnits_IndexesFollowOrder(t *testing.T) {
	us := Units("a\n\nb\n\nc")
	if len(us) != 3 {
		t.Fatalf("want 3 units, got %d", len(us))
	}
	for i, u := range us {
		if u.Index != i {
			t.Fatalf("unit %d has index %d", i, u.Index)
		}
	}
	if got := Texts(us); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("Texts = %q", got)
	}
}
