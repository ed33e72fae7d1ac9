package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "storefront_settlement/docs"
	"storefront_settlement/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Storefront Settlement API
// @version         1.0
// @description     Payment settlement, order and delivery API backed by DynamoDB and RabbitMQ.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx); err != nil {
		log.Fatalf("Stopped: %v", err)
	}
}
