package httpmodel

import (
	"aidetect/internal/core/version"
	"aidetect/internal/platform/config"
)

// Default model identity loaded on the server
const (
	DefaultModelName = "kakaocorp/kanana-1.5-8b-instruct-2505"
)

// FromConfig reads CORE_MODEL_* into Options
// maxLength is the fallback for CORE_MODEL_MAX_LENGTH, usually the API text limit
func FromConfig(cfg config.Conf, maxLength int) Options {
	c := cfg.Prefix("CORE_MODEL_")
	return Options{
		BaseURL:     c.MayURL("SERVER_URL", defaultBaseURL),
		UserAgent:   version.Service + "/" + version.Version(),
		Timeout:     c.MayDuration("TIMEOUT", defaultTimeout),
		ModelName:   c.MayString("NAME", DefaultModelName),
		AdapterPath: c.MayString("ADAPTER_PATH", ""),
		MaxLength:   c.MayInt("MAX_LENGTH", maxLength),
		BatchSize:   c.MayInt("BATCH_SIZE", defaultBatchSize),
	}
}
