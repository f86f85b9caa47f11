package httpmodel

import (
	"strings"
	"testing"

	"aidetect/internal/platform/config"
)

func TestFromConfig(t *testing.T) {
	t.Setenv("CORE_MODEL_SERVER_URL", "http://gpu-box:9000")
	t.Setenv("CORE_MODEL_ADAPTER_PATH", "/models/lora")
	t.Setenv("CORE_MODEL_BATCH_SIZE", "8")

	o := FromConfig(config.New(), 4096)
	if o.BaseURL != "http://gpu-box:9000" || o.AdapterPath != "/models/lora" || o.BatchSize != 8 {
		t.Fatalf("options = %+v", o)
	}
	if o.ModelName != DefaultModelName || o.MaxLength != 4096 || o.Timeout != defaultTimeout {
		t.Fatalf("defaults = %+v", o)
	}
	if !strings.HasPrefix(o.UserAgent, "aidetect-api/") {
		t.Fatalf("user agent = %q", o.UserAgent)
	}
}
