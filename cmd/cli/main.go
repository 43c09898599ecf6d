package main

import (
	"context"
	"log"
	"os"

	"github.com/avasiljevs/accountkeeper/internal/buildinfo"
	"github.com/avasiljevs/accountkeeper/internal/client/cli"
	"github.com/avasiljevs/accountkeeper/internal/client/config"
	"github.com/avasiljevs/accountkeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewDevelopment()
	defer logger.Sync()

	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
