// Package config reads typed settings from prefixed environment variables
package config

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"aidetect/internal/platform/config/raw"
	"aidetect/internal/platform/logger"
)

// Conf scopes lookups under a prefix such as "CORE_API_"
type Conf struct{ env raw.Conf }

// New returns the unprefixed root
func New() Conf { return Conf{env: raw.New()} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{env: c.env.Prefix(p)} }

// may parses key with parse, falling back to def when unset or malformed
// Malformed values are logged so a typo in deployment config is visible
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.env.Key(key)).Str("value", s).Err(err).Msg("config: bad value, using default")
		return def
	}
	return v
}

func (c Conf) MayString(key, def string) string {
	return may(c, key, def, func(s string) (string, error) { return s, nil })
}

func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

func (c Conf) MayFloat64(key string, def float64) float64 {
	return may(c, key, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// MayURL accepts only absolute http(s) URLs and returns them without a trailing slash
func (c Conf) MayURL(key, def string) string {
	return may(c, key, def, func(s string) (string, error) {
		u, err := url.Parse(s)
		if err != nil {
			return "", err
		}
		if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
			return "", &url.Error{Op: "parse", URL: s, Err: errNotAbsolute}
		}
		return strings.TrimRight(s, "/"), nil
	})
}

// MayCSV splits a comma list, dropping blanks; an all-blank list yields def
func (c Conf) MayCSV(key string, def []string) []string {
	return may(c, key, def, func(s string) ([]string, error) {
		var out []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) == 0 {
			return def, nil
		}
		return out, nil
	})
}
