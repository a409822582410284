package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/backup"
	"github.com/junaidrashid-git/storefront-api/events"
	"github.com/junaidrashid-git/storefront-api/routes"
	"github.com/junaidrashid-git/storefront-api/store"
	"github.com/junaidrashid-git/storefront-api/validation"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API. The schema is migrated on start. When AMQP_URL is
set, order events are also published to the configured exchange. When
BACKUP_DIR is set, a JSON dump is written there daily at BACKUP_HOUR.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.New(e.db)
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	if e.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	hub := events.NewHub(e.log)
	publishers := events.Multi{hub}
	if e.cfg.Events.AMQPURL != "" {
		amqpPub, err := events.NewAMQPPublisher(e.cfg.Events.AMQPURL, e.cfg.Events.Exchange)
		if err != nil {
			return fmt.Errorf("connect amqp: %w", err)
		}
		defer amqpPub.Close()
		publishers = append(publishers, amqpPub)
		e.log.Info("publishing order events", zap.String("exchange", e.cfg.Events.Exchange))
	}

	if e.cfg.Backup.Dir != "" {
		sched := &backup.Scheduler{
			DB:        e.db,
			Dir:       e.cfg.Backup.Dir,
			Hour:      e.cfg.Backup.Hour,
			Retention: e.cfg.Backup.Retention,
			Log:       e.log,
		}
		go sched.Run(ctx)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := routes.NewRouter(routes.Deps{
		Store:       st,
		Auth:        auth.NewService(st.Users, auth.NewTokens(e.cfg.Auth.JWTSecret, e.cfg.Auth.TokenTTL), e.cfg.Auth.BcryptCost),
		Validator:   validation.New(),
		Publisher:   publishers,
		Hub:         hub,
		Log:         e.log,
		Registry:    reg,
		AdminAPIKey: e.cfg.AdminAPIKey,
		CORSOrigins: e.cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + e.cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		e.log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", e.cfg.Env))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	e.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
