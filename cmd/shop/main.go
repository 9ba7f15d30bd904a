package main

import (
	"io"
	"log"
	"os"

	"branded_clothing_shop/internal/config"
	"branded_clothing_shop/internal/handlers"
	"branded_clothing_shop/internal/routes"
)

func main() {
	// silencieux par défaut; --verbose ou SHOP_LOG_FILE rouvrent le journal
	log.SetOutput(io.Discard)
	cfg := config.Load()

	h := handlers.New(cfg)
	defer h.Close()

	root := routes.NewRootCommand(h)
	if err := root.Execute(); err != nil {
		h.Close()
		os.Exit(1)
	}
}
