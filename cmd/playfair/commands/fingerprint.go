package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a short digest of the key grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyword == "" {
				return fmt.Errorf("keyword required (-k)")
			}
			fp, err := appCtx.Cipher.Fingerprint(keyword)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}
