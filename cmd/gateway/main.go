package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"storefront_settlement/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.RunGateway(ctx); err != nil {
		log.Fatalf("Stopped: %v", err)
	}
}
