package raw

import "testing"

func TestConf(t *testing.T) {
	t.Setenv("LOG_LEVEL", " debug ")
	t.Setenv("LOG_CALLER", "YES")
	t.Setenv("LOG_JSON", "off")
	t.Setenv("LOG_SAMPLE_EVERY", "10")
	t.Setenv("LOG_BAD_INT", "-3")
	t.Setenv("LOG_BLANK", "   ")

	c := New().Prefix("LOG_")
	if c.Key("LEVEL") != "LOG_LEVEL" || c.Prefix("X_").Key("Y") != "LOG_X_Y" {
		t.Fatalf("keys: %q %q", c.Key("LEVEL"), c.Prefix("X_").Key("Y"))
	}
	if got := c.Get("LEVEL", "info"); got != "debug" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("BLANK", "info"); got != "info" {
		t.Fatalf("blank Get = %q", got)
	}
	if !c.GetBool("CALLER", false) || c.GetBool("JSON", true) || !c.GetBool("MISSING", true) {
		t.Fatal("GetBool")
	}
	if c.GetInt("SAMPLE_EVERY", 0) != 10 || c.GetInt("BAD_INT", 1) != 1 || c.GetInt("MISSING", 7) != 7 {
		t.Fatal("GetInt")
	}
}
