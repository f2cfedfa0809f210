package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bjaus/sprintf"
	"github.com/bjaus/sprintf/internal/logging"
	"github.com/bjaus/sprintf/internal/output"
)

// segmentView describes one parsed segment for display.
type segmentView struct {
	Index     int    `json:"index" yaml:"index"`
	Type      string `json:"type" yaml:"type"`
	Text      string `json:"text" yaml:"text"`
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	ZeroPad   bool   `json:"zero_pad,omitempty" yaml:"zero_pad,omitempty"`
	Width     *int   `json:"width,omitempty" yaml:"width,omitempty"`
	Precision *int   `json:"precision,omitempty" yaml:"precision,omitempty"`

	source string
	border output.BorderStyle
}

func newSegmentView(i int, seg sprintf.Segment, source string, border output.BorderStyle) segmentView {
	v := segmentView{Index: i, source: source, border: border}
	switch s := seg.(type) {
	case sprintf.Literal:
		v.Type = "literal"
		v.Text = string(s)
	case sprintf.Placeholder:
		v.Type = "placeholder"
		v.Text = s.String()
		v.Kind = s.Kind.String()
		v.ZeroPad = s.ZeroPad
		if s.HasWidth {
			v.Width = &s.Width
		}
		if s.HasPrecision {
			v.Precision = &s.Precision
		}
	}
	return v
}

func (v segmentView) String() string {
	if v.Type == "literal" {
		return fmt.Sprintf("%d literal %q", v.Index, v.Text)
	}
	return fmt.Sprintf("%d placeholder %s", v.Index, v.Text)
}

func (v segmentView) Row() []string {
	text := v.Text
	if v.Type == "literal" {
		text = strconv.Quote(text)
	}
	zero := ""
	if v.ZeroPad {
		zero = "yes"
	}
	return []string{strconv.Itoa(v.Index), v.Type, text, v.Kind, optional(v.Width), optional(v.Precision), zero}
}

func (segmentView) Header() []string {
	return []string{"#", "Type", "Text", "Kind", "Width", "Precision", "Zero"}
}

func (segmentView) Alignments() []output.Alignment {
	return []output.Alignment{
		output.AlignRight, output.AlignLeft, output.AlignLeft, output.AlignLeft,
		output.AlignRight, output.AlignRight, output.AlignCenter,
	}
}

func (v segmentView) Title() string { return v.source }

func (v segmentView) Border() output.BorderStyle { return v.border }

func optional(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "parse TEMPLATE",
		Short:   "Show how a template splits into literals and placeholders",
		Example: `  sprintf parse "%04.02f%% done" -o table --border ascii`,
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
			tmpl, err := sprintf.Parse(args[0])
			if err != nil {
				return err
			}
			logger := logging.GetLogger("parse")
			logger.Debug().
				Str("template", tmpl.Source()).
				Int("placeholders", tmpl.Placeholders()).
				Msg("Parsed template")

			segs := tmpl.Segments()
			views := make([]segmentView, len(segs))
			for i, seg := range segs {
				views[i] = newSegmentView(i, seg, tmpl.Source(), border)
			}
			return output.Write(cmd.OutOrStdout(), format, views...)
		},
	}
}
