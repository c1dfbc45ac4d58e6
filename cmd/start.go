package cmd

import (
	"context"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tradejournal/internal/delivery/http"
	"tradejournal/internal/repository"
	"tradejournal/internal/service"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the tradejournal API server",
	Run:   Start,
}

func Start(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	repo := repository.NewRepository(appDep.db.DB, appDep.log)

	services := service.NewService(
		appDep.cfg,
		appDep.log,
		repo,
		appDep.cache,
		appDep.hub,
	)
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo, appDep.validator, services, appDep.hub)

	if err := services.SchedulerService.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)
	go func() {
		if err := apiServer.Start(); err != nil && err != httpNet.ErrServerClosed {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down gracefully...")

	services.SchedulerService.Stop()

	if err := apiServer.Stop(); err != nil {
		log.Fatalf("Failed to stop HTTP server: %v", err)
	}

	if err := appDep.Close(); err != nil {
		log.Fatalf("Failed to close app dependency: %v", err)
	}
}
