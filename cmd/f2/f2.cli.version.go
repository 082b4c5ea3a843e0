package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}

func (a *app) versionCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: HelpVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionOutput{Version: Version, Commit: Commit, GoVersion: runtime.Version()}
			switch format {
			case OutputFormatJSON:
				return a.writeJSON(info)
			case OutputFormatText:
				fmt.Fprintf(a.stdout, FmtVersion, CLIName, info.Version, info.Commit, info.GoVersion)
				return nil
			default:
				return newExitError(ExitCodeUsageError, ErrMsgInvalidFormat, nil)
			}
		},
	}
	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "output format: text or json")
	return cmd
}
