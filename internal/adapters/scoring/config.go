package scoring

import (
	"aidetect/internal/platform/config"
	"aidetect/internal/platform/resilience"
)

// OptionsFromConfig reads the backend knobs from CORE_MODEL_*
func OptionsFromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_MODEL_")
	return Options{
		MaxConcurrent: int64(c.MayInt("MAX_CONCURRENT", defaultMaxConcurrent)),
		LoadAttempts:  c.MayInt("LOAD_ATTEMPTS", defaultLoadAttempts),
		LoadBackoff:   c.MayDuration("LOAD_BACKOFF", defaultLoadBackoff),
		Breaker: resilience.BreakerConfig{
			Enabled:     c.MayBool("BREAKER", true),
			OpenTimeout: c.MayDuration("BREAKER_OPEN_TIMEOUT", 0),
		},
	}
}
