package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/oneof/internal/gen"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <target> <member> <member>...",
		Short: "Print the narrowing method that removes target from a union",
		Long: "resolve looks target up among the member types of a union and prints\n" +
			"the NarrowK method for it with the resulting Either type.",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := gen.Resolve(args[1:], args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}
