package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/menusmith/menusmith/internal/db"
	"github.com/menusmith/menusmith/internal/generator"
	"github.com/menusmith/menusmith/internal/importer"
	"github.com/menusmith/menusmith/internal/preview"
	"github.com/menusmith/menusmith/internal/restaurants"
	"github.com/menusmith/menusmith/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the menu editor backend server",
	Long:  `Starts the editor backend with the restaurants REST API, live-preview websocket channel, export endpoint, and bulk text import.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		// Open database.
		dbPath := filepath.Join(cfg.Server.DataDir, "menusmith.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		gen := generator.New()
		hub := preview.NewHub()

		srv := server.New(server.Config{
			Port:     port,
			DataDir:  cfg.Server.DataDir,
			AllowAll: cfg.Server.AllowAll,
		}, database, gen, hub)

		// Register feature routes.
		r := srv.Router()
		store := restaurants.NewStore(database)
		restaurants.RegisterRoutes(r, store, gen, hub)
		importer.RegisterRoutes(r)
		hub.RegisterRoutes(r)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "menusmith server v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
