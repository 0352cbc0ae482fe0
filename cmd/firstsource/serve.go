package main

import (
	"github.com/spf13/cobra"

	"github.com/firstsource-health/firstsource-core/internal/infrastructure/httpapi"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API server",
		Long:  "Serves articles, myths, accounts and the assistant under /api until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				appConfig.Server.Port = port
			}
			return runServe(cmd)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides config and PORT)")

	return cmd
}

func runServe(cmd *cobra.Command) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		server := httpapi.NewServer(appConfig.Server, httpapi.Handlers{
			Articles: d.ArticleHandler,
			Myths:    d.MythHandler,
			Accounts: d.AccountHandler,
			Chat:     d.ChatHandler,
		}, logger)
		return server.ListenAndServe(cmd.Context())
	})
}
