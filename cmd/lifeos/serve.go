// ABOUTME: CLI command for serving the tools over HTTP.
// ABOUTME: Mounts the streamable MCP handler and a health check on a gin engine.
package main

import (
	"os/signal"
	"syscall"

	"github.com/harperreed/lifeos/internal/httpserver"
	"github.com/harperreed/lifeos/internal/mcp"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tools over HTTP",
	Long: `Serve the MCP tools over streamable HTTP.

ENDPOINTS:

  /mcp       MCP streamable HTTP transport (GET, POST, DELETE)
  /healthz   200 when the database is reachable, 503 otherwise

The listen address comes from --addr, then http_addr in the config file or
LIFEOS_HTTP_ADDR, and defaults to :8001.

EXAMPLES:

  lifeos serve
  lifeos serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(registry)
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.GetHTTPAddr()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return httpserver.New(repo, server.HTTPHandler()).ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8001)")
	rootCmd.AddCommand(serveCmd)
}
