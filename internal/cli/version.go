package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	modulePath = "github.com/ib-77/oneof"
	Version    = "0.1.0"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the oneofgen version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "oneofgen v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
