package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"playfair/internal/domain"
)

// digraphs <message>: print the normalized digraph sequence without
// encrypting anything. Needs no keyword.
func digraphsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digraphs <message>",
		Short: "Print the normalized digraph sequence for a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), joinDigraphs(appCtx.Cipher.Digraphs(args[0])))
			return nil
		},
	}
}

func joinDigraphs(ds []domain.Digraph) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}
