package main

import (
	"github.com/Raimguhinov/morrow-go/internal/app"
	"github.com/Raimguhinov/morrow-go/internal/config"
)

func main() {
	cfg := config.GetConfig()
	app.Run(cfg)
}
