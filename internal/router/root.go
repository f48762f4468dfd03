package router

import (
	"github.com/gofiber/fiber/v2"
)

func Root(supplements *Supplements) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		return c.Redirect("/"+supplements.DefaultLanguage, fiber.StatusMovedPermanently)
	}
}
