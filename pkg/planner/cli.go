package planner

import (
	"context"
	"time"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
	"github.com/voyago/voyago/pkg/config"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "planner",
		Usage: "Trip planning without the web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "generate a single trip plan and print it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "destination",
						Usage:    "destination city",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "start-date",
						Value: time.Now().AddDate(0, 0, 14).Format("2006-01-02"),
						Usage: "trip start date (YYYY-MM-DD)",
					},
					&cli.StringFlag{
						Name:  "days",
						Value: "3",
						Usage: "trip length in days",
					},
					&cli.StringFlag{
						Name:  "origin",
						Usage: "origin airport IATA code",
					},
					&cli.StringFlag{
						Name:  "interests",
						Usage: "comma separated traveller interests",
					},
					&cli.StringFlag{
						Name:  "budget",
						Usage: "total trip budget",
					},
				},
				Action: func(c *cli.Context) error {
					request, err := ParseRequest(RawRequest{
						Destination: c.String("destination"),
						StartDate:   c.String("start-date"),
						Days:        c.String("days"),
						Origin:      c.String("origin"),
						Interests:   c.String("interests"),
						Budget:      c.String("budget"),
					})
					if err != nil {
						return err
					}

					cfg := config.Load()
					tripPlanner := New(cfg, NewStore(cfg))

					plan := tripPlanner.CreatePlan(context.Background(), request)

					pretty.Println(plan)

					return nil
				},
			},
		},
	}
}
