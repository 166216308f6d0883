package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jphuse/nuskell"
	"github.com/jphuse/nuskell/internal/logging"
	"github.com/jphuse/nuskell/internal/presentation/tui"
	httpAdapter "github.com/jphuse/nuskell/pkg/adapters/http"
	"github.com/jphuse/nuskell/pkg/adapters/memory"
	redisAdapter "github.com/jphuse/nuskell/pkg/adapters/redis"
	"github.com/jphuse/nuskell/pkg/observability"
	"github.com/jphuse/nuskell/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP compiler server",
	Long: `Starts the nuskell compiler in server mode, exposing a JSON API over HTTP:
POST /compile for one-shot translation, /systems for compile-and-store, and
/metrics for Prometheus scraping.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		storeKind, _ := cmd.Flags().GetString("store")
		level, _ := cmd.Flags().GetString("log-level")

		engine := nuskell.New(nuskell.WithLogger(logging.New(logging.ParseLevel(level))))

		var store ports.SystemStore
		switch storeKind {
		case "memory":
			store = memory.NewStore()
		case "redis":
			addr, _ := cmd.Flags().GetString("redis-addr")
			ttl, _ := cmd.Flags().GetDuration("redis-ttl")
			redisStore := redisAdapter.New(addr, "", 0, redisAdapter.WithTTL(ttl))
			defer redisStore.Close()
			store = redisStore
		default:
			fmt.Printf("Unknown store: %s. Supported: memory, redis\n", storeKind)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(engine, store, observability.NewMetrics())

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			tui.PrintBanner()
			fmt.Printf("Starting Nuskell Server on %s\n", srv.Addr)
			fmt.Printf("System store: %s\n", storeKind)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Nuskell Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("store", "memory", "System store backend: 'memory' or 'redis'")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address (only for --store redis)")
	serveCmd.Flags().Duration("redis-ttl", 0, "Expiration for stored systems, 0 keeps them forever (only for --store redis)")
}
