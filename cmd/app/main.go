package main

import (
	"os"

	"github.com/schnuffelll/shop-backend/internal/app"
	config "github.com/schnuffelll/shop-backend/internal/cfg"
	"github.com/schnuffelll/shop-backend/pkg/logger"
)

//	@title			Shop Backend API
//	@version		1.0
//	@description	REST API каталога, корзины и заказов цифровых товаров

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
