package main

import (
	_ "momo_gateway/docs"
	"momo_gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           MoMo Gateway API
// @version         1.0
// @description     MTN mobile-money payment gateway with pending-payment reconciliation.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
