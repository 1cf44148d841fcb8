package main

import (
	"fmt"

	"github.com/elevateglobal/elevate-wallet/internal/app"
	"github.com/elevateglobal/elevate-wallet/internal/config"
	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/storage"
)

func main() {
	// load config
	config := config.NewConfig()
	// initialize logger
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// connect database
	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		panic(fmt.Sprintf("can't connect database: %s ", err.Error()))
	}
	defer database.Close()
	if err := database.Initialize(); err != nil {
		panic(fmt.Sprintf("can't initialize database: %s ", err.Error()))
	}
	// run server
	app.Run(config, storage.NewStorage(database))
}
