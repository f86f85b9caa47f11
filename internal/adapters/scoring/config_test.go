package scoring

import (
	"testing"
	"time"

	"aidetect/internal/platform/config"
)

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv("CORE_MODEL_MAX_CONCURRENT", "4")
	t.Setenv("CORE_MODEL_LOAD_ATTEMPTS", "3")
	t.Setenv("CORE_MODEL_BREAKER", "false")
	t.Setenv("CORE_MODEL_BREAKER_OPEN_TIMEOUT", "5s")

	o := OptionsFromConfig(config.New())
	if o.MaxConcurrent != 4 || o.LoadAttempts != 3 || o.LoadBackoff != defaultLoadBackoff {
		t.Fatalf("options = %+v", o)
	}
	if o.Breaker.Enabled || o.Breaker.OpenTimeout != 5*time.Second {
		t.Fatalf("breaker = %+v", o.Breaker)
	}
}

func TestOptionsFromConfig_Defaults(t *testing.T) {
	o := OptionsFromConfig(config.New())
	if o.MaxConcurrent != defaultMaxConcurrent || o.LoadAttempts != defaultLoadAttempts || !o.Breaker.Enabled {
		t.Fatalf("options = %+v", o)
	}
}
