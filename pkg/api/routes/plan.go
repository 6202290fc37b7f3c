package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/voyago/voyago/pkg/planner"
)

func PlanRouter(router fiber.Router, tripPlanner *planner.Planner) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getPlan(c, tripPlanner)
	})
}

func getPlan(c *fiber.Ctx, tripPlanner *planner.Planner) error {
	request, err := planner.ParseRequest(planner.RawRequest{
		Destination: c.Query("destination"),
		StartDate:   c.Query("start_date"),
		Days:        c.Query("days"),
		Origin:      c.Query("origin"),
		Interests:   c.Query("interests"),
		Budget:      c.Query("budget"),
	})
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	plan := tripPlanner.CreatePlan(c.Context(), request)

	planReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, plan)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce plan",
		})
	}

	return c.JSON(planReduced)
}
