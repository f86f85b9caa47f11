package config

import (
	"reflect"
	"testing"
	"time"
)

func TestPrefix_Nests(t *testing.T) {
	t.Setenv("CORE_MODEL_NAME", "kanana")
	if got := New().Prefix("CORE_").Prefix("MODEL_").MayString("NAME", ""); got != "kanana" {
		t.Fatalf("nested prefix lookup = %q", got)
	}
}

func TestMay_FallsBack(t *testing.T) {
	t.Setenv("CORE_API_PORT", "8080")
	t.Setenv("CORE_API_RATE_BURST", "ten")
	t.Setenv("CORE_API_SWAGGER", "false")
	t.Setenv("CORE_API_PROFILER", "maybe")
	t.Setenv("CORE_API_RATE_RPS", " 2.5 ")
	t.Setenv("CORE_API_SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("CORE_API_HOST", "   ")

	c := New().Prefix("CORE_API_")
	if c.MayInt("PORT", 8000) != 8080 || c.MayInt("RATE_BURST", 10) != 10 || c.MayInt("MISSING", 3) != 3 {
		t.Fatal("MayInt")
	}
	if c.MayBool("SWAGGER", true) || !c.MayBool("PROFILER", true) {
		t.Fatal("MayBool")
	}
	if c.MayFloat64("RATE_RPS", 0) != 2.5 {
		t.Fatal("MayFloat64")
	}
	if c.MayDuration("SHUTDOWN_TIMEOUT", time.Second) != 5*time.Second {
		t.Fatal("MayDuration")
	}
	if c.MayString("HOST", "0.0.0.0") != "0.0.0.0" {
		t.Fatal("blank string should fall back")
	}
}

func TestMayCSV(t *testing.T) {
	def := []string{"*"}
	tests := map[string][]string{
		"web:k1, cli:k2": {"web:k1", "cli:k2"},
		" , ,":           def,
		"only":           {"only"},
	}
	c := New().Prefix("CORE_API_")
	for in, want := range tests {
		t.Setenv("CORE_API_KEYS", in)
		if got := c.MayCSV("KEYS", def); !reflect.DeepEqual(got, want) {
			t.Fatalf("MayCSV(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMayURL(t *testing.T) {
	const def = "http://localhost:8001"
	tests := map[string]string{
		"http://gpu-box:9000/":      "http://gpu-box:9000",
		"https://model.internal/v1": "https://model.internal/v1",
		"/relative":                 def,
		"gpu-box:9000":              def,
		"ftp://gpu-box":             def,
	}
	c := New().Prefix("CORE_MODEL_")
	for in, want := range tests {
		t.Setenv("CORE_MODEL_SERVER_URL", in)
		if got := c.MayURL("SERVER_URL", def); got != want {
			t.Fatalf("MayURL(%q) = %q, want %q", in, got, want)
		}
	}
}
