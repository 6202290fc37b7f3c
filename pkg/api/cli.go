package api

import (
	"github.com/urfave/cli/v2"
	"github.com/voyago/voyago/pkg/config"
	"github.com/voyago/voyago/pkg/planner"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := config.Load()

					tripPlanner := planner.New(cfg, planner.NewStore(cfg))

					return SetupServer(c.String("listen"), tripPlanner)
				},
			},
		},
	}
}
