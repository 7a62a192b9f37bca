package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/nekomori/animeseek/internal/metrics"
)

func newMetricsCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show performance counters of a running server",
		Long: `Query the /api/metrics endpoint of a running animeseek server and show
the counters.

Examples:
  animeseek metrics
  animeseek metrics --addr localhost:9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetrics(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8787", "Address of the running server")

	return cmd
}

func runMetrics(addr string) error {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + addr + "/api/metrics")
	if err != nil {
		return fmt.Errorf("failed to reach server at %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	var snap metrics.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return fmt.Errorf("failed to decode metrics: %w", err)
	}

	rows := [][]string{
		{"Search time", snap.SearchTime.String()},
		{"Parse time", snap.ParseTime.String()},
		{"Cache hits", fmt.Sprintf("%d", snap.CacheHits)},
		{"Cache misses", fmt.Sprintf("%d", snap.CacheMisses)},
		{"Fuzzy matches", fmt.Sprintf("%d", snap.FuzzyMatches)},
	}
	fmt.Println(renderTable([]string{"Counter", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
	return nil
}
