package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set by -ldflags on release builds. Unset values fall back to the module
// and VCS data the Go toolchain embeds.
var (
	version = ""
	commit  = ""
	date    = ""
)

var readBuildInfo = debug.ReadBuildInfo

type buildInfo struct {
	Version   string
	Commit    string
	Date      string
	Modified  bool
	GoVersion string
}

func currentBuildInfo() buildInfo {
	info := buildInfo{Version: "dev", Commit: "none", Date: "unknown"}

	if bi, ok := readBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			info.Version = v
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = s.Value
			case "vcs.time":
				info.Date = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if version != "" {
		info.Version = version
	}
	if commit != "" {
		info.Commit = commit
	}
	if date != "" {
		info.Date = date
	}
	return info
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuildInfo()

			rev := info.Commit
			if info.Modified {
				rev += " (modified)"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ideaslot %s\ncommit: %s\nbuilt: %s\n", info.Version, rev, info.Date)
			if info.GoVersion != "" {
				fmt.Fprintf(out, "go: %s\n", info.GoVersion)
			}
			return nil
		},
	}

	return cmd
}
