package router

import (
	"fmt"

	"github.com/econectar/econectar-web/internal/thermal"
	"github.com/gofiber/fiber/v2"
)

func Lang_Thermal(supplements *Supplements) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		lang := c.Params("lang")
		if !validLang(supplements, lang) {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.ErrNotFound.Code).SendString(fmt.Sprintf("server does not support '%s' language... yet??", lang))
		}

		return cachedPage(supplements, c, func() ([]byte, int, error) {
			defaults := &thermal.Input{
				AmbientTempC:  20,
				ColonySizePct: 50,
				Boxes:         thermal.DefaultBoxes(),
			}

			content, err := supplements.TemplateManager.Render("thermal", fiber.Map{
				"L":                  supplements.Localization[lang],
				"Lang":               lang,
				"AvailableLanguages": supplements.AvailableLanguages,
				"Defaults":           defaults,
				"Result":             thermal.Calculate(defaults),
				"PublishedYear":      "2026",
				"Title":              supplements.Localization[lang].Thermal.Header,
			})
			if err != nil {
				return nil, fiber.ErrInternalServerError.Code, err
			}
			return content, fiber.StatusOK, nil
		})
	}
}

// ApiV1_Thermal_Calculate runs the hive thermal model on a JSON body
// and answers with the full metrics set.
func ApiV1_Thermal_Calculate(supplements *Supplements) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		input := &thermal.Input{}
		if err := c.BodyParser(input); err != nil {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.ErrBadRequest.Code).SendString(fmt.Sprintf("failed to parse thermal input: %v", err))
		}
		if len(input.Boxes) == 0 {
			input.Boxes = thermal.DefaultBoxes()
		}

		if err := supplements.Validate.Struct(input); err != nil {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.ErrBadRequest.Code).SendString(fmt.Sprintf("invalid thermal input: %v", err))
		}

		return c.JSON(thermal.Calculate(input))
	}
}
