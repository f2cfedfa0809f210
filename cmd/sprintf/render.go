package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/bjaus/sprintf"
	"github.com/bjaus/sprintf/internal/logging"
	"github.com/bjaus/sprintf/internal/output"
)

// result is one rendered template.
type result struct {
	Template string `json:"template" yaml:"template"`
	Output   string `json:"output" yaml:"output"`

	border output.BorderStyle
}

func (r result) String() string             { return r.Output }
func (r result) Row() []string              { return []string{r.Template, r.Output} }
func (r result) Header() []string           { return []string{"Template", "Output"} }
func (r result) Border() output.BorderStyle { return r.border }

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render TEMPLATE [VALUE...]",
		Short: "Render a template with the given values",
		Long: `Render TEMPLATE, filling placeholders with VALUEs in order.

Values are typed by prefix (s:text, i:42, f:1.5, v:anything) or inferred:
integers, then floats, then text.`,
		Example: `  sprintf render "%06d" 123
  sprintf render "%s owes %.2f" alice f:12 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			border, err := opts.borderStyle()
			if err != nil {
				return err
			}
			logger := logging.GetLogger("render")
			start := time.Now()

			tmpl, err := sprintf.Parse(args[0])
			if err != nil {
				return err
			}
			logger.Debug().Str("template", tmpl.Source()).Int("placeholders", tmpl.Placeholders()).Msg("Parsed template")

			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}
			out, err := tmpl.Format(values...)
			if err != nil {
				return err
			}
			logging.LogDuration(logger, start, "render")
			return output.Write(cmd.OutOrStdout(), format, result{Template: tmpl.Source(), Output: out, border: border})
		},
	}
}
