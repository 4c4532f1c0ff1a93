package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// buildInfo describes the running carbon binary.
type buildInfo struct {
	Module    string
	Version   string
	Commit    string
	Date      string
	Modified  bool
	GoVersion string
	Deps      []*debug.Module
}

// readBuildInfo merges the link-time variables with what the Go toolchain
// embedded in the binary. Link-time values win when set.
func readBuildInfo() buildInfo {
	info := buildInfo{
		Module:    "github.com/vango-dev/carbon",
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if bi.Main.Path != "" {
		info.Module = bi.Main.Path
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	info.Deps = bi.Deps
	return info
}

func versionCmd() *cobra.Command {
	var short, deps bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the Carbon CLI version. The version, commit and build date come
from release flags when set, otherwise from the module and VCS data the Go
toolchain records in the binary.`,
		Run: func(cmd *cobra.Command, args []string) {
			info := readBuildInfo()
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, info.Version)
				return
			}

			commit := info.Commit
			if info.Modified {
				commit += " (modified)"
			}
			fmt.Fprintf(out, "carbon %s\n", info.Version)
			fmt.Fprintf(out, "  Module:  %s\n", info.Module)
			fmt.Fprintf(out, "  Commit:  %s\n", commit)
			fmt.Fprintf(out, "  Built:   %s\n", info.Date)
			fmt.Fprintf(out, "  Go:      %s %s/%s\n", info.GoVersion, runtime.GOOS, runtime.GOARCH)

			if deps {
				fmt.Fprintln(out, "  Dependencies:")
				for _, d := range info.Deps {
					if d.Replace != nil {
						d = d.Replace
					}
					fmt.Fprintf(out, "    %s %s\n", d.Path, d.Version)
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version")
	cmd.Flags().BoolVar(&deps, "deps", false, "List module dependencies")

	return cmd
}
