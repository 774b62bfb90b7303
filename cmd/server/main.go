package main

import (
	"context"
	"log"
	"os"

	"github.com/Asad-NCS/lostandfound/internal/buildinfo"
	"github.com/Asad-NCS/lostandfound/internal/server"
	"github.com/Asad-NCS/lostandfound/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
