package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/voyago/voyago/pkg/api/routes"
	"github.com/voyago/voyago/pkg/http_server"
	"github.com/voyago/voyago/pkg/planner"
)

func SetupServer(listen string, tripPlanner *planner.Planner) error {
	webApp := fiber.New()
	webApp.Use(http_server.NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PlanRouter(group.Group("/plan"), tripPlanner)

	return webApp.Listen(listen)
}
