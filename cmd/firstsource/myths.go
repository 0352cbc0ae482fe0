package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
	"github.com/firstsource-health/firstsource-core/internal/infrastructure/apiclient"
)

func newMythsCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "myths",
		Short: "List common health myths and the facts behind them",
		RunE: func(cmd *cobra.Command, args []string) error {
			myths, err := fetchMyths(cmd.Context(), server)
			if err != nil {
				return err
			}
			displayMyths(os.Stdout, myths)
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "Read from a running API server instead of the local database")

	return cmd
}

func fetchMyths(ctx context.Context, server string) ([]entities.Myth, error) {
	if server != "" {
		client, err := apiclient.New(server, nil)
		if err != nil {
			return nil, err
		}
		return client.ListMyths(ctx)
	}

	var myths []entities.Myth
	err := withDeps(ctx, func(d *Deps) error {
		var err error
		myths, err = d.MythHandler.HandleList(ctx)
		return err
	})
	return myths, err
}

func displayMyths(w io.Writer, myths []entities.Myth) {
	if len(myths) == 0 {
		fmt.Fprintln(w, "No myths found.")
		return
	}

	for _, m := range myths {
		fmt.Fprintf(w, "#%d", m.ID)
		if m.Category != "" {
			fmt.Fprintf(w, " [%s]", m.Category)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Myth: %s\n", m.Myth)
		fmt.Fprintf(w, "  Fact: %s\n", m.Fact)
		if m.Source != "" {
			fmt.Fprintf(w, "  Source: %s\n", m.Source)
		}
		fmt.Fprintln(w)
	}
}
