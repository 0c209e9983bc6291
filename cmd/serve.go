package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/theopenlane/iocscope/config"
	"github.com/theopenlane/iocscope/internal/api"
	"github.com/theopenlane/iocscope/internal/lookup"
	"github.com/theopenlane/iocscope/internal/slack"
)

// serveCmd is the cobra command that starts the iocscope API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the iocscope api server",
	Run: func(cmd *cobra.Command, _ []string) {
		err := serve(cmd.Context())
		cobra.CheckErr(err)
	},
}

// init registers the serve command and its flags on the root command
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.PersistentFlags().String("config", "./config/.config.yaml", "config file location")
}

// serve initializes dependencies and starts the iocscope API server
func serve(ctx context.Context) error {
	cfgPath := k.String("config")

	cfg, err := config.Load(&cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if k.Bool("debug") {
		cfg.Server.Debug = true
	}

	if k.Bool("pretty") {
		cfg.Server.Pretty = true
	}

	planner := lookup.New(
		lookup.WithStagger(cfg.Lookup.Stagger),
		lookup.WithHostInfo(cfg.Lookup.IncludeHostInfo),
	)

	routerCfg := api.RouterConfig{
		Planner:       planner,
		MaxBodySize:   cfg.Server.MaxBodySize,
		MaxShareLinks: cfg.Slack.MaxLinks,
	}

	// assigned only when non-nil so the interface stays nil when sharing is off
	if slackClient := setupSlack(cfg); slackClient != nil {
		routerCfg.Notifier = slackClient
	}

	srv := &http.Server{
		Addr:         cfg.Server.Listen,
		Handler:      api.NewRouter(routerCfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGracePeriod)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("listen", cfg.Server.Listen).Dur("stagger", cfg.Lookup.Stagger).Msg("starting iocscope service")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

// setupSlack initializes the Slack webhook client from config, returning nil when unconfigured
func setupSlack(cfg *config.Config) *slack.Client {
	if cfg.Slack.WebhookURL == "" {
		log.Info().Msg("slack sharing not configured, skipping")
		return nil
	}

	client, err := slack.New(
		cfg.Slack.WebhookURL,
		slack.WithHTTPClient(&http.Client{Timeout: cfg.Slack.RequestTimeout}),
		slack.WithUsername(cfg.Slack.Username),
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize slack client")
		return nil
	}

	log.Info().Msg("slack sharing configured")

	return client
}
