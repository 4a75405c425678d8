package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osckit/oscaddr/pkg/address"
	"github.com/osckit/oscaddr/pkg/errors"
	"github.com/osckit/oscaddr/pkg/logging"
)

// newAddressCmd creates the address command
func newAddressCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "address <address>",
		Short:   MsgAddressShort,
		Long:    MsgAddressLong,
		Example: MsgAddressExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("commands.address")

			addr, err := address.Parse(args[0])
			if err != nil {
				logger.Debug().Err(err).Str("input", args[0]).Msg("address rejected")
				return err
			}

			switch format {
			case formatJSON:
				out, err := json.MarshalIndent(addr, "", "  ")
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "failed to encode address")
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			case formatText:
				fmt.Fprintf(cmd.OutOrStdout(), "containers: %s\n", strings.Join(addr.Containers, " "))
				fmt.Fprintf(cmd.OutOrStdout(), "method: %s\n", addr.Method)
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, MsgFlagFormat)

	return cmd
}
