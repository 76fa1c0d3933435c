// Package buildinfo reports the version of the running cbook binary.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Release builds inject these via ldflags. They stay empty for local builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

const defaultModulePath = "github.com/aidanlsb/clientbook"

// Info describes the running binary.
type Info struct {
	Version    string `json:"version"`
	ModulePath string `json:"module_path"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

var readBuildInfo = debug.ReadBuildInfo

// Current collects Info from the embedded module data, falling back to the
// ldflags values for anything the toolchain did not record.
func Current() Info {
	info := Info{
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		if bi.Main.Path != "" {
			info.ModulePath = bi.Main.Path
		}
		info.Version = normalizeVersion(bi.Main.Version)
		if bi.GoVersion != "" {
			info.GoVersion = bi.GoVersion
		}
		settings := make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}
		info.Commit = settings["vcs.revision"]
		info.CommitTime = settings["vcs.time"]
		info.Modified = strings.EqualFold(settings["vcs.modified"], "true")
	}

	if info.Version == "devel" && Version != "" {
		info.Version = normalizeVersion(Version)
	}
	if info.Commit == "" {
		info.Commit = Commit
	}
	if info.CommitTime == "" {
		info.CommitTime = Date
	}
	return info
}

// Lines renders info as "key: value" lines after a "cbook <version>" header.
func (i Info) Lines() []string {
	lines := []string{
		"cbook " + i.Version,
		"module: " + i.ModulePath,
	}
	if i.Commit != "" {
		lines = append(lines, "commit: "+i.Commit)
	}
	if i.CommitTime != "" {
		lines = append(lines, "commit_time: "+i.CommitTime)
	}
	lines = append(lines,
		"go: "+i.GoVersion,
		"platform: "+i.Platform,
		fmt.Sprintf("modified: %t", i.Modified),
	)
	return lines
}

func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}
