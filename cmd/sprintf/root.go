package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/sprintf/internal/logging"
	"github.com/bjaus/sprintf/internal/output"
)

// options holds the flags shared by every subcommand.
type options struct {
	verbosity int
	format    string
	border    string
}

func (o *options) outputFormat() (output.Format, error) {
	return output.ParseFormat(o.format)
}

func (o *options) borderStyle() (output.BorderStyle, error) {
	return output.ParseBorder(o.border)
}

// NewRootCmd builds the command tree. Each call returns an independent tree
// so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "sprintf",
		Short: "Render printf-style templates",
		Long: `sprintf renders templates such as "%06d items at %.2f" against typed
values. Placeholders take the form %[0][width][.precision]kind with kind
one of s, d, f, x, X, v; "%%" prints a literal percent sign.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	root.PersistentFlags().StringVarP(&opts.format, "output", "o", string(output.Plain), "Output format: plain, json, yaml, table or markdown")
	root.PersistentFlags().StringVar(&opts.border, "border", output.BorderRounded.String(), "Table border style: rounded, ascii or none")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newParseCmd(opts))
	root.AddCommand(newCallCmd(opts))
	return root
}
