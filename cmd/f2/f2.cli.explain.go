package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itsatony/go-f2"
	"github.com/spf13/cobra"
)

// explainOutput represents JSON output for explain
type explainOutput struct {
	Pattern        string              `json:"pattern"`
	Items          []explainItemOutput `json:"items"`
	NextPositional int                 `json:"next_positional"`
	HasKeywords    bool                `json:"has_keywords"`
}

type explainItemOutput struct {
	Kind      string   `json:"kind"`
	Text      string   `json:"text"`
	Arg       int      `json:"arg,omitempty"`
	Explicit  bool     `json:"explicit,omitempty"`
	Path      []string `json:"path,omitempty"`
	Type      string   `json:"type,omitempty"`
	Sign      string   `json:"sign,omitempty"`
	Fill      string   `json:"fill,omitempty"`
	Width     int      `json:"width,omitempty"`
	Precision int      `json:"precision,omitempty"`
}

func (a *app) explainCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   CmdNameExplain + " PATTERN",
		Short: HelpExplainShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != OutputFormatText && format != OutputFormatJSON {
				return newExitError(ExitCodeUsageError, ErrMsgInvalidFormat, nil)
			}
			engine, err := a.engine()
			if err != nil {
				return err
			}
			out := newExplainOutput(engine.Compile(args[0]))
			if format == OutputFormatJSON {
				return a.writeJSON(out)
			}
			a.writeExplainText(out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "output format: text or json")
	return cmd
}

func newExplainOutput(tmpl *f2.Template) explainOutput {
	out := explainOutput{
		Pattern:        tmpl.Source(),
		Items:          make([]explainItemOutput, 0, tmpl.Len()),
		NextPositional: tmpl.NextPositional(),
		HasKeywords:    tmpl.HasKeywords(),
	}
	for _, it := range tmpl.Items() {
		item := explainItemOutput{Kind: it.Kind.String(), Text: it.Text}
		if it.Kind != f2.ItemText {
			d := it.Directives
			item.Type = string(d.TypeCode)
			item.Sign = d.Sign.String()
			if d.Width > 0 {
				item.Fill = string(d.FillOrDefault())
			}
			item.Width = d.Width
			item.Precision = d.Precision
		}
		switch it.Kind {
		case f2.ItemPositional:
			item.Arg = it.Index + 1
			item.Explicit = it.RawIndex > 0
		case f2.ItemKeyword:
			item.Path = it.Path
		}
		out.Items = append(out.Items, item)
	}
	return out
}

func (a *app) writeExplainText(out explainOutput) {
	for i, item := range out.Items {
		fmt.Fprintf(a.stdout, FmtExplainItem, i, item.Kind, item.Text, describeItem(item))
	}
	fmt.Fprintf(a.stdout, FmtExplainSummary, out.NextPositional, out.HasKeywords)
}

// describeItem renders the non-empty attributes of a placeholder as key=value pairs
func describeItem(item explainItemOutput) string {
	var sb strings.Builder
	if item.Arg > 0 {
		fmt.Fprintf(&sb, " arg=%d", item.Arg)
		if item.Explicit {
			sb.WriteString(" explicit")
		}
	}
	if len(item.Path) > 0 {
		fmt.Fprintf(&sb, " path=%q", item.Path)
	}
	if item.Type != "" {
		fmt.Fprintf(&sb, " type=%s", item.Type)
	}
	if item.Sign != "" {
		fmt.Fprintf(&sb, " sign=%s", item.Sign)
	}
	if item.Width > 0 {
		fmt.Fprintf(&sb, " fill=%q width=%d", item.Fill, item.Width)
	}
	if item.Precision > 0 {
		fmt.Fprintf(&sb, " precision=%d", item.Precision)
	}
	return sb.String()
}

func (a *app) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return newExitError(ExitCodeError, ErrMsgJSONMarshalFailed, err)
	}
	fmt.Fprintln(a.stdout, string(data))
	return nil
}
