package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/carb_validation/config"
	"github.com/Gunvolt24/carb_validation/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, cleanup, err := bootstrap(ctx, config.Prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	runErr := application.Run(ctx)
	cleanup()
	if runErr != nil {
		os.Exit(1)
	}
}

// bootstrap: конфигурация из окружения с префиксом prefix и сборка приложения.
func bootstrap(ctx context.Context, prefix string) (*app.App, app.Cleanup, error) {
	cfg, err := config.LoadWithPrefix(prefix)
	if err != nil {
		return nil, func() {}, fmt.Errorf("config: %w", err)
	}

	application, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		return nil, cleanup, fmt.Errorf("bootstrap: %w", err)
	}
	return application, cleanup, nil
}
