package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/saneatsu/saneatsu.me-sub001/internal/api"
	"github.com/saneatsu/saneatsu.me-sub001/internal/core"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	serveCmd.Flags().StringVarP(&addr, "addr", "a", "", "address to listen on (default to [server] addr)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the API",
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()
		listenAddr := addr
		if listenAddr == "" {
			listenAddr = config.ConfigFile.Server.Addr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := api.NewServer(config, currentStore())
		exitOnError(server.ListenAndServe(ctx, listenAddr))
	},
}
