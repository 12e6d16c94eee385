package main

import (
	"stay/config"
	"stay/di"
	"stay/shared/logger"
)

// @title Stay API
// @version 1.0
// @description Guests and bookings with synchronized references.
// @BasePath /
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)

	http, cleanup := di.InitializeService()
	defer cleanup()

	http.Serve()
}
