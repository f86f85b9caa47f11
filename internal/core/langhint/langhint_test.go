package langhint

import (
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		script string
		lang   string
	}{
		{name: "empty", in: "", script: "", lang: Undetermined},
		{name: "digits only", in: "12345 !!", script: "", lang: Undetermined},
		{name: "korean", in: "인공지능이 작성한 글인지 사람이 작성한 글인지 판별합니다.", script: ScriptHangul, lang: "ko"},
		{name: "short korean", in: "안녕하세요", script: ScriptHangul, lang: Undetermined},
		{name: "korean with latin terms", in: "이 모델은 LoRA 어댑터를 사용하여 한국어 문장을 분류합니다", script: ScriptHangul, lang: "ko"},
		{name: "japanese", in: "これは人工知能が書いた文章かどうかを判定するテストです", script: ScriptKana, lang: "ja"},
		{name: "english", in: "This paragraph was written by a person, probably.", script: ScriptLatin, lang: Undetermined},
		{name: "russian", in: "Это предложение написано человеком или машиной", script: ScriptCyrillic, lang: Undetermined},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := Detect(tc.in)
			if h.Script != tc.script || h.Lang != tc.lang {
				t.Fatalf("Detect(%q) = %+v, want script %q lang %q", tc.in, h, tc.script, tc.lang)
			}
		})
	}
}

func TestDetect_Share(t *testing.T) {
	h := Detect(strings.Repeat("가", 30) + strings.Repeat("a", 10))
	if h.Letters != 40 || h.Share != 0.75 {
		t.Fatalf("got %+v", h)
	}
}
