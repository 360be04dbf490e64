package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "dev build",
			info: Info{Version: "dev", Commit: unknown, Date: unknown, GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "gradhash version dev (go1.25.1, linux/amd64)",
		},
		{
			name: "release build",
			info: Info{Version: "1.2.0", Commit: "0123456789abcdef", Date: "2026-01-02T03:04:05Z", GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "gradhash version 1.2.0 (commit: 01234567, built: 2026-01-02T03:04:05Z, go1.25.1, linux/amd64)",
		},
		{
			name: "short dirty commit",
			info: Info{Version: "dev", Commit: "abc", Date: "2026-01-02T03:04:05Z", Modified: true, GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "gradhash version dev (commit: abc-dirty, built: 2026-01-02T03:04:05Z, go1.25.1, linux/amd64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/jmylchreest/gradhash", Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.time", Value: "2026-10-01T00:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	t.Run("FillsDefaults", func(t *testing.T) {
		info := Info{Version: "dev", Commit: unknown, Date: unknown}
		applyBuildInfo(&info, bi)

		want := Info{Version: "v0.3.1", Commit: "fedcba9876543210", Date: "2026-10-01T00:00:00Z", Modified: true}
		if diff := cmp.Diff(want, info); diff != "" {
			t.Errorf("info mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("KeepsLdflags", func(t *testing.T) {
		info := Info{Version: "1.0.0", Commit: "1111111111", Date: "2025-01-01T00:00:00Z"}
		applyBuildInfo(&info, bi)

		if info.Version != "1.0.0" || info.Commit != "1111111111" || info.Date != "2025-01-01T00:00:00Z" {
			t.Errorf("ldflags values overwritten: %+v", info)
		}
	})

	t.Run("IgnoresDevelVersion", func(t *testing.T) {
		info := Info{Version: "dev", Commit: unknown, Date: unknown}
		applyBuildInfo(&info, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

		if info.Version != "dev" {
			t.Errorf("Version = %q, want dev", info.Version)
		}
	})
}

func TestString(t *testing.T) {
	if got := String(); !strings.HasPrefix(got, "gradhash version "+Short()) {
		t.Errorf("String() = %q, want it to start with the version %q", got, Short())
	}
}
