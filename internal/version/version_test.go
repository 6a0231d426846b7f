package version

import (
	"strings"
	"testing"

	"github.com/jmylchreest/coopsal/pkg/salary"
)

func TestString(t *testing.T) {
	origVersion, origDirty := Version, Dirty
	defer func() { Version, Dirty = origVersion, origDirty }()

	tests := []struct {
		version, dirty, want string
	}{
		{"1.2.0", "false", "1.2.0"},
		{"1.2.0", "true", "1.2.0-dirty"},
		{"dev", "", "dev"},
	}

	for _, tt := range tests {
		Version, Dirty = tt.version, tt.dirty
		if got := String(); got != tt.want {
			t.Errorf("String() with %q/%q = %q, want %q", tt.version, tt.dirty, got, tt.want)
		}
	}
}

func TestFull(t *testing.T) {
	out := Full()
	for _, want := range []string{"coopsal ", "Commit:", "Rates:      " + salary.RatesVersion, "OS/Arch:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Full() missing %q:\n%s", want, out)
		}
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.RatesVersion != salary.RatesVersion {
		t.Errorf("RatesVersion = %q, want %q", info.RatesVersion, salary.RatesVersion)
	}
	if info.GoVersion == "" || info.Platform == "" {
		t.Errorf("Get() = %+v, want runtime fields set", info)
	}
}
