package main

import (
	"court-booking-backend/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

// main boots the court booking API: config, Postgres migrations, Redis slot
// state sync, then the HTTP server with graceful shutdown.
func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to start court booking service: %v", err)
	}

	app.Run()
}
