package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func gridCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Print the 5x5 key grid row by row",
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyword == "" {
				return fmt.Errorf("keyword required (-k)")
			}
			g, err := appCtx.Cipher.Grid(keyword)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g)
			return nil
		},
	}
}
