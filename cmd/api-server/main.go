package main

import (
	"fmt"
	"os"

	"github.com/ysEthan/magic-sync/config"
	"github.com/ysEthan/magic-sync/pkg/log"
	"github.com/ysEthan/magic-sync/pkg/server"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())

	cliApp := &cli.App{
		Name:  "magic-sync",
		Usage: "sync the product catalog from the open platform",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server and the scheduled sync",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "sync",
				Usage: "run one sync and exit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "start", Usage: "start time, 2006-01-02 15:04:05"},
					&cli.StringFlag{Name: "end", Usage: "end time, 2006-01-02 15:04:05"},
					&cli.StringSliceFlag{Name: "sku", Usage: "sku codes, comma separated"},
				},
				Action: func(ctx *cli.Context) error {
					syncer := InitSyncer(cfg)
					if skus := ctx.StringSlice("sku"); len(skus) > 0 {
						res, err := syncer.SyncBySku(ctx.Context, skus)
						if err != nil {
							return err
						}
						log.L.Info("sync by sku finished", zap.Int("processed", res.Processed), zap.Int("total", res.Total))
						return nil
					}
					res, err := syncer.SyncByDate(ctx.Context, ctx.String("start"), ctx.String("end"))
					if err != nil {
						return err
					}
					log.L.Info("sync by date finished", zap.Int("processed", res.Processed), zap.Int("total", res.Total))
					return nil
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update the catalog tables",
				Action: func(ctx *cli.Context) error {
					return InitMigrator(cfg).AutoMigrate()
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("magic-sync exited", zap.Error(err))
	}
}
