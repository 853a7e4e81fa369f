package cmd

import (
	"github.com/spf13/cobra"

	"github.com/JavierMedel/culinairy-webapp/internal/recipeapi"
	"github.com/JavierMedel/culinairy-webapp/web"
)

var webAddr string

// webCmd runs the local web UI server.
var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the recipe flows over a local HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := recipeapi.NewClient(cfg.BaseURL)
		store := openStore(cfg)
		mux := web.NewMux(client, store, cfg.PageSize, cfg.TopK)
		web.RunServer(mux, webAddr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(webCmd)

	webCmd.Flags().StringVar(
		&webAddr,
		"addr",
		":3000",
		"listen address",
	)
}
