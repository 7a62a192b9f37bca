package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/nekomori/animeseek/internal/api"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the HTTP API server for external integrations.

Examples:
  animeseek serve                  # Start on the configured address
  animeseek serve --addr :9000     # Start on port 9000
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Address to listen on (default from config)")

	return cmd
}

func runServe(addr string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = a.cfg.Server.Addr
	}

	server := api.NewServer(a.provider, a.metrics, a.log)

	fmt.Printf("Starting animeseek API server on %s\n", addr)
	fmt.Println("Endpoints:")
	fmt.Println("  GET  /api/health          - Health check")
	fmt.Println("  GET  /api/search?q=       - Search and extract metadata")
	fmt.Println("  GET  /api/resolve?q=      - Resolve best-matching page URL")
	fmt.Println("  POST /api/parse           - Extract metadata from a name")
	fmt.Println("  GET  /api/metrics         - Performance counters")
	fmt.Println("  POST /api/metrics/reset   - Reset performance counters")

	return http.ListenAndServe(addr, server.Handler())
}
