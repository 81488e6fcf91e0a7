package main

import (
	"context"
	"log"

	"github.com/ymstdo/userbase/internal/server"
	"github.com/ymstdo/userbase/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	defer app.Close()

	app.Run(ctx)

}
