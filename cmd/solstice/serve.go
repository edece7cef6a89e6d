package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/solstice/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Starts the deduction engine in server mode, exposing a JSON API over HTTP.

Solving endpoints are stateless: every request carries the full grid. The
optional session endpoints keep grids between requests in the configured
store (memory, file or redis).`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		storeKind, _ := cmd.Flags().GetString("store")
		dataDir, _ := cmd.Flags().GetString("data-dir")
		redisAddr, _ := cmd.Flags().GetString("redis-addr")
		redisPassword, _ := cmd.Flags().GetString("redis-password")
		redisDB, _ := cmd.Flags().GetInt("redis-db")
		catalogDir, _ := cmd.Flags().GetString("catalog")
		metrics, _ := cmd.Flags().GetBool("metrics")
		debug, _ := cmd.Flags().GetBool("debug")

		// Cancel on interrupt so outstanding requests get a graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		opts := cli.ServeOptions{
			Addr:          addr,
			StoreKind:     storeKind,
			DataDir:       dataDir,
			RedisAddr:     redisAddr,
			RedisPassword: redisPassword,
			RedisDB:       redisDB,
			CatalogDir:    catalogDir,
			Metrics:       metrics,
			Debug:         debug,
		}
		if err := cli.RunServe(ctx, opts); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().String("store", "memory", "Session store backend: 'memory', 'file' or 'redis'")
	serveCmd.Flags().String("data-dir", cli.DefaultDataDir, "Directory for the file store")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address for the redis store")
	serveCmd.Flags().String("redis-password", "", "Redis password for the redis store")
	serveCmd.Flags().Int("redis-db", 0, "Redis database number for the redis store")
	serveCmd.Flags().String("catalog", "", "Directory of a loam puzzle catalog to expose over the API")
	serveCmd.Flags().Bool("metrics", false, "Expose Prometheus metrics on /metrics")
}
