package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/robowhales/reefscout/internal/assistant"
	"github.com/robowhales/reefscout/internal/config"
	"github.com/robowhales/reefscout/internal/db"
	"github.com/robowhales/reefscout/internal/llm"
	"github.com/robowhales/reefscout/internal/retrieval"
	"github.com/robowhales/reefscout/internal/scouting"
	"github.com/robowhales/reefscout/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scouting server",
	Long:  `Starts the HTTP server: scouting record intake, team statistics and rankings, and the WebSocket strategy assistant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		database, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}
		if cfg.RateLimitRPM > 0 {
			provider = llm.NewRateLimitedProvider(provider, cfg.RateLimitRPM)
		}

		store := scouting.NewStore(database)
		engine := assistant.NewEngine(
			retrieval.NewRetriever(store),
			provider,
			assistant.NewSessionStore(database),
			assistant.Options{
				MaxTokens:    cfg.MaxTokens,
				HistoryLimit: cfg.HistoryLimit,
				OnCompletion: func(model string, inputTokens, outputTokens int) {
					server.ObserveCompletion(model, inputTokens, outputTokens,
						llm.EstimateCost(model, inputTokens, outputTokens))
				},
			},
		)

		srv := server.New(server.Config{Addr: cfg.Addr(), CORSOrigins: cfg.CORSOrigins}, database)
		r := srv.Router()
		scouting.RegisterRoutes(r, store)
		retrieval.RegisterRoutes(r, store)
		assistant.RegisterRoutes(r, engine)

		if count, err := store.Count(cmd.Context()); err == nil {
			log.Printf("reefscout: %d scouting records loaded, assistant provider %s (%s)",
				count, provider.Name(), cfg.Model)
		}

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && err != http.ErrServerClosed {
				return err
			}
		case sig := <-sigCh:
			log.Printf("reefscout: received %s, shutting down", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutting down: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
