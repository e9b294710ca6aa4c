package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/orchestrahub/orchestra-backend/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, relying on process environment")
	}

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	addr := ":" + a.Cfg.Port
	fmt.Printf("Server listening on %s\n", addr)
	if err := a.Run(addr); err != nil {
		a.Log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
