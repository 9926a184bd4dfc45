package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// encrypt <message>: run the full pipeline and print the ciphertext.
func encryptCmd() *cobra.Command {
	var showGrid, showDigraphs bool

	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt a message with the keyword-derived grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyword == "" {
				return fmt.Errorf("keyword required (-k)")
			}
			enc, err := appCtx.Cipher.Encrypt(keyword, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showGrid {
				fmt.Fprintf(out, "%s\n", enc.Grid)
			}
			if showDigraphs {
				fmt.Fprintf(out, "%s\n", joinDigraphs(enc.Digraphs))
			}
			fmt.Fprintln(out, enc.Ciphertext)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showGrid, "show-grid", false, "also print the key grid")
	cmd.Flags().BoolVar(&showDigraphs, "show-digraphs", false, "also print the digraph sequence")
	return cmd
}
