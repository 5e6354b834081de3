package main

import (
	"log"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ tracker failed to start: %v", err)
	}
}
