package main

import (
	"Concessionario/FiberConfig"
	"Concessionario/Models"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment defaults")
	}

	if err := Models.Connect(); err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	FiberConfig.FiberConfig()
}
