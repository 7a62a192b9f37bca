package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nekomori/animeseek/internal/torrent"
)

func newParseCmd() *cobra.Command {
	var episodeTitle string

	cmd := &cobra.Command{
		Use:   "parse <name>...",
		Short: "Extract release metadata from torrent names",
		Long: `Parse torrent names and show the extracted metadata: batch detection,
episode number, resolution and release group.

Examples:
  animeseek parse "[SubsPlease] Sousou no Frieren - 05 (1080p)"
  animeseek parse "[Judas] Mushoku Tensei S02 (Batch)" "[EMBER] Dandadan - 01"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))
			for _, name := range args {
				m := torrent.Extract(name, episodeTitle, "")
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
		},
	}

	cmd.Flags().StringVar(&episodeTitle, "episode-title", "", "separate episode title to parse episode numbers from")

	return cmd
}
