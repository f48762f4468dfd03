package router

import (
	"fmt"

	"github.com/econectar/econectar-web/internal/gallery"
	"github.com/econectar/econectar-web/internal/media"
	"github.com/gofiber/fiber/v2"
)

const landingProjectsPreview = 3

func Lang_Landing(supplements *Supplements) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		lang := c.Params("lang")
		if !validLang(supplements, lang) {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.ErrNotFound.Code).SendString(fmt.Sprintf("server does not support '%s' language... yet??", lang))
		}

		return cachedPage(supplements, c, func() ([]byte, int, error) {
			galleries := make([]*gallery.Gallery, 0)
			for _, name := range supplements.Registry.Names() {
				if g, err := supplements.Registry.Get(name); err == nil {
					galleries = append(galleries, g)
				}
			}

			projects, err := supplements.Library.Projects(lang)
			status := fiber.StatusOK
			if err != nil {
				status = fiber.StatusPartialContent
				projects = []*media.Project{}
			}
			if len(projects) > landingProjectsPreview {
				projects = projects[:landingProjectsPreview]
			}

			content, err := supplements.TemplateManager.Render("landing", fiber.Map{
				"L":                  supplements.Localization[lang],
				"Lang":               lang,
				"AvailableLanguages": supplements.AvailableLanguages,
				"Galleries":          galleries,
				"Projects":           projects,
				"Facts":              supplements.FactGiver.Give(lang),
				"PublishedYear":      "2026",
				"Title":              supplements.Localization[lang].Hero.Title,
			})
			if err != nil {
				return nil, fiber.ErrInternalServerError.Code, err
			}
			return content, status, nil
		})
	}
}
