package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <query> [html-file]",
		Short: "Resolve a query to its best-matching page URL",
		Long: `Resolve a query against the torrent index search results and print the
URL of the best-matching detail page.

With a second argument, candidates are read from a local HTML file instead
of fetching the index.

Examples:
  animeseek resolve "Sousou no Frieren"
  animeseek resolve "Sousou no Frieren" results.html`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runResolve,
	}
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	query := args[0]

	var url string
	if len(args) == 2 {
		html, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[1], err)
		}
		url = a.resolver.ResolvePageURL(string(html), query)
	} else {
		url = a.provider.ResolvePage(context.Background(), query)
	}

	if url == "" {
		return fmt.Errorf("no page matched %q", query)
	}
	fmt.Println(url)
	return nil
}
