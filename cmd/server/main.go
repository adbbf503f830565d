package main

import (
	"log"

	_ "planner/docs"
	"planner/internal/config"
	"planner/internal/server"
)

// @title           Planner API
// @version         1.0
// @description     Personal task planner: date sections, drag and drop ordering and snooze.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
