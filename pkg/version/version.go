// Package version reports build information injected with
// -ldflags "-X shipquote/pkg/version.gitVersion=...".
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/gosuri/uitable"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

//nolint:gochecknoglobals
var (
	gitVersion   = "v0.0.0-dev"
	gitCommit    = ""
	gitTreeState = ""
	buildDate    = "1970-01-01T00:00:00Z"
)

type Info struct {
	GitVersion   string `json:"gitVersion"             yaml:"gitVersion"`
	GitCommit    string `json:"gitCommit"              yaml:"gitCommit"`
	GitTreeState string `json:"gitTreeState,omitempty" yaml:"gitTreeState,omitempty"`
	BuildDate    string `json:"buildDate"              yaml:"buildDate"`
	GoVersion    string `json:"goVersion"              yaml:"goVersion"`
	Compiler     string `json:"compiler"               yaml:"compiler"`
	Platform     string `json:"platform"               yaml:"platform"`
}

func (info Info) String() string {
	if info.GitTreeState == "dirty" {
		return info.GitVersion + "-dirty"
	}

	return info.GitVersion
}

func (info Info) JSON() (string, error) {
	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json.MarshalIndent: %w", err)
	}

	return string(b), nil
}

// Text renders the info as a right-aligned two column table.
func (info Info) Text() string {
	table := uitable.New()
	table.RightAlign(0)
	table.MaxColWidth = 80
	table.Separator = " "

	table.AddRow("gitVersion:", info.GitVersion)
	table.AddRow("gitCommit:", info.GitCommit)

	if info.GitTreeState != "" {
		table.AddRow("gitTreeState:", info.GitTreeState)
	}

	table.AddRow("buildDate:", info.BuildDate)
	table.AddRow("goVersion:", info.GoVersion)
	table.AddRow("compiler:", info.Compiler)
	table.AddRow("platform:", info.Platform)

	return table.String()
}

// Get returns the injected values. Commit and tree state fall back to the
// VCS stamp the go command embeds when they were not injected.
func Get() Info {
	info := Info{
		GitVersion:   gitVersion,
		GitCommit:    gitCommit,
		GitTreeState: gitTreeState,
		BuildDate:    buildDate,
		GoVersion:    runtime.Version(),
		Compiler:     runtime.Compiler,
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
	}

	if info.GitCommit != "" {
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.GitCommit = s.Value
			case "vcs.modified":
				if s.Value == "true" {
					info.GitTreeState = "dirty"
				} else if info.GitTreeState == "" {
					info.GitTreeState = "clean"
				}
			}
		}
	}

	return info
}
