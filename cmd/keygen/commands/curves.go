package commands

import (
	"fmt"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/spf13/cobra"
)

func newCurvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the supported curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range curves.Names() {
				c, err := curves.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %d bits\n", name,
					c.Params().BitSize)
			}
			return nil
		},
	}
}
