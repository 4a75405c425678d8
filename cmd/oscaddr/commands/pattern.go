package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osckit/oscaddr/pkg/errors"
	"github.com/osckit/oscaddr/pkg/logging"
	"github.com/osckit/oscaddr/pkg/pattern"
)

// elementView is the JSON shape of one classified pattern element.
type elementView struct {
	Kind   string   `json:"kind"`
	Text   string   `json:"text,omitempty"`
	Exprs  []string `json:"exprs,omitempty"`
	A      string   `json:"a,omitempty"`
	B      string   `json:"b,omitempty"`
	Source string   `json:"source"`
}

// newPatternCmd creates the pattern command
func newPatternCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "pattern <pattern>",
		Short:   MsgPatternShort,
		Long:    MsgPatternLong,
		Example: MsgPatternExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("commands.pattern")

			elems, err := pattern.Parse(args[0])
			if err != nil {
				logger.Debug().Err(err).Str("input", args[0]).Msg("pattern rejected")
				return err
			}

			views := make([]elementView, len(elems))
			for i, e := range elems {
				views[i] = describe(e)
			}

			switch format {
			case formatJSON:
				out, err := json.MarshalIndent(views, "", "  ")
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "failed to encode pattern")
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			case formatText:
				for _, v := range views {
					fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", v.Kind, v.Source)
				}
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, MsgFlagFormat)

	return cmd
}

// describe maps each pattern variant onto its display shape. The switch
// is exhaustive over the closed variant set.
func describe(e pattern.Pattern) elementView {
	switch p := e.(type) {
	case pattern.Literal:
		return elementView{Kind: "literal", Text: string(p), Source: p.String()}
	case pattern.QuestionMark:
		return elementView{Kind: "question-mark", Source: p.String()}
	case pattern.Wildcard:
		return elementView{Kind: "wildcard", Source: p.String()}
	case pattern.Bracket:
		return elementView{Kind: "bracket", Exprs: exprViews(p.Exprs), Source: p.String()}
	case pattern.InvertedBracket:
		return elementView{Kind: "inverted-bracket", Exprs: exprViews(p.Exprs), Source: p.String()}
	case pattern.Alt:
		return elementView{Kind: "alternation", A: p.A, B: p.B, Source: p.String()}
	default:
		return elementView{Kind: "unknown", Source: e.String()}
	}
}

func exprViews(exprs []pattern.BracketExpression) []string {
	views := make([]string, len(exprs))
	for i, e := range exprs {
		views[i] = e.String()
	}
	return views
}
