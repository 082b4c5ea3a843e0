package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// typesOutput represents JSON output for types
type typesOutput struct {
	Types []string `json:"types"`
}

func (a *app) typesCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   CmdNameTypes,
		Short: HelpTypesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != OutputFormatText && format != OutputFormatJSON {
				return newExitError(ExitCodeUsageError, ErrMsgInvalidFormat, nil)
			}
			engine, err := a.engine()
			if err != nil {
				return err
			}
			codes := engine.Types()
			if format == OutputFormatJSON {
				return a.writeJSON(typesOutput{Types: codes})
			}
			for _, code := range codes {
				fmt.Fprintln(a.stdout, code)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "output format: text or json")
	return cmd
}
