package buildinfo

import (
	"runtime/debug"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCurrent(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })

	t.Run("module data", func(t *testing.T) {
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				GoVersion: "go1.24.3",
				Main:      debug.Module{Path: "example.com/cbook", Version: "v1.2.3"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			}, true
		}

		got := Current()
		if got.Version != "v1.2.3" || got.ModulePath != "example.com/cbook" {
			t.Errorf("version/module = %q/%q", got.Version, got.ModulePath)
		}
		if got.Commit != "abc123" || got.CommitTime != "2026-01-02T03:04:05Z" || !got.Modified {
			t.Errorf("vcs info = %+v", got)
		}
		if got.GoVersion != "go1.24.3" {
			t.Errorf("go version = %q", got.GoVersion)
		}
	})

	t.Run("ldflags fallback", func(t *testing.T) {
		readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
		origVersion, origCommit := Version, Commit
		t.Cleanup(func() { Version, Commit = origVersion, origCommit })
		Version, Commit = "v0.9.0", "def456"

		got := Current()
		if got.Version != "v0.9.0" || got.Commit != "def456" {
			t.Errorf("got %+v", got)
		}
		if got.ModulePath != defaultModulePath {
			t.Errorf("module = %q", got.ModulePath)
		}
	})
}

func TestInfoLines(t *testing.T) {
	info := Info{Version: "devel", ModulePath: "m", GoVersion: "go1", Platform: "linux/amd64"}
	want := []string{"cbook devel", "module: m", "go: go1", "platform: linux/amd64", "modified: false"}
	if diff := cmp.Diff(want, info.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}
