package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/sprintf"
	"github.com/bjaus/sprintf/internal/logging"
	"github.com/bjaus/sprintf/internal/output"
)

func newCallCmd(opts *options) *cobra.Command {
	var valuesPath string
	cmd := &cobra.Command{
		Use:   "call EXPR",
		Short: "Evaluate a call expression against a YAML values file",
		Long: `Evaluate EXPR, a quoted template followed by variable names:

  "Hello, %s - attempt %d", user.name, user.tries

Variables are looked up in the YAML document given by --values, with nested
keys joined by dots. Use --values - to read the document from stdin.`,
		Example: `  sprintf call '"%s scored %d", user.name, user.score' --values values.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			border, err := opts.borderStyle()
			if err != nil {
				return err
			}
			logger := logging.GetLogger("call")

			call, err := sprintf.ParseCall(args[0])
			if err != nil {
				return err
			}
			logger.Debug().Str("template", call.Template.Source()).Strs("variables", call.Variables).Msg("Parsed call")

			values, err := loadValues(cmd, valuesPath)
			if err != nil {
				return err
			}
			logger.Debug().Int("values", len(values)).Str("path", valuesPath).Msg("Loaded values")

			out, err := call.Execute(values)
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), format, result{Template: call.String(), Output: out, border: border})
		},
	}
	cmd.Flags().StringVarP(&valuesPath, "values", "f", "", "YAML file with variable values (- for stdin)")
	return cmd
}

func loadValues(cmd *cobra.Command, path string) (sprintf.MapResolver, error) {
	var r io.Reader
	switch path {
	case "":
		return sprintf.MapResolver{}, nil
	case "-":
		r = cmd.InOrStdin()
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open values: %w", err)
		}
		defer f.Close()
		r = f
	}
	return sprintf.DecodeValues(r)
}
