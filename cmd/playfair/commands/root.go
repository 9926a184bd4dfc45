package commands

import (
	"github.com/spf13/cobra"

	"playfair/internal/app"
	"playfair/internal/services/cipher"
)

var (
	keyword string
	appCtx  *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "playfair",
		Short: "Playfair cipher encryption CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			appCtx = app.New(cipher.New())
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&keyword, "keyword", "k", "", "keyword the grid is derived from")

	root.AddCommand(encryptCmd(), gridCmd(), digraphsCmd(), fingerprintCmd())
	return root.Execute()
}
