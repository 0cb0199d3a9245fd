package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/rajdeepray/portfolio/internal/catalog"
	"github.com/rajdeepray/portfolio/internal/config"
	"github.com/rajdeepray/portfolio/internal/telemetry"
	"github.com/rajdeepray/portfolio/internal/web"
)

var serveArgs struct {
	images string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveArgs.images, "images", "./images", "directory served at /images")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Printf("Error shutting down tracing: %v", err)
		}
	}()

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	sender, err := newSender(cfg.Contact)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	srv := web.NewServer(cat, sender, cfg.Anim)
	if serveArgs.images != "" {
		srv.ImagesDir = serveArgs.images
	}
	r, err := srv.Router()
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s (contact transport: %s)", cfg.Addr(), cfg.Contact.Transport)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(sctx)
}
