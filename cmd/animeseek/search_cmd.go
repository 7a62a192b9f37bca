package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the torrent index for an anime title",
		Long: `Search the configured torrent index, resolve the best-matching page for
the query and list the torrents found there.

Examples:
  animeseek search "Sousou no Frieren"
  animeseek search "mahoutsukai no yome" --verbose`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	results := a.provider.Search(context.Background(), args[0])
	if len(results) == 0 {
		fmt.Println("No results found")
		return nil
	}

	rows := make([][]string, 0, len(results))
	for _, m := range results {
		episode := "-"
		if m.EpisodeNumber >= 0 {
			episode = strconv.Itoa(m.EpisodeNumber)
		}
		batch := ""
		if m.IsBatch {
			batch = "yes"
		}
		rows = append(rows, []string{m.Name, episode, batch, m.Resolution, m.ReleaseGroup})
	}

	fmt.Println(renderTable(
		[]string{"Name", "Episode", "Batch", "Resolution", "Group"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
	))
	return nil
}
