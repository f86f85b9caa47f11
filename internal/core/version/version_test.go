package version

import "testing"

func TestInfo_Defaults(t *testing.T) {
	got := Info()
	if got.Service != Service || got.Version != "dev" || got.Commit != "none" || got.Date != "unknown" {
		t.Fatalf("Info() = %+v", got)
	}
	if Version() != got.Version {
		t.Fatalf("Version() = %q", Version())
	}
}
