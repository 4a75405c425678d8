package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osckit/oscaddr/pkg/errors"
	"github.com/osckit/oscaddr/pkg/logging"
	"github.com/osckit/oscaddr/pkg/manifest"
)

// newCheckCmd creates the check command
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check <manifest>",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("commands.check")

			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			issues := m.Validate()
			for _, issue := range issues {
				fmt.Fprintln(cmd.OutOrStdout(), issue.String())
			}

			if len(issues) > 0 {
				logger.Info().Int("issues", len(issues)).Str("path", args[0]).Msg("manifest rejected")
				return errors.Newf(errors.ErrInvalidInput, "%d invalid entries in %s", len(issues), args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d endpoints, %d routes OK\n",
				args[0], len(m.Endpoints), len(m.Routes))
			return nil
		},
	}

	return cmd
}
