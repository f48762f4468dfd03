package router

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ApiV1_Gallery_Snapshot renders the current viewer state for one
// gallery as an HTML fragment. The page script swaps it into the
// overlay container after every action.
func ApiV1_Gallery_Snapshot(supplements *Supplements) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		if _, err := supplements.Registry.Get(name); err != nil {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.ErrNotFound.Code).SendString(fmt.Sprintf("unknown gallery '%s'", name))
		}

		return renderViewer(supplements, c, name)
	}
}

// ApiV1_Gallery_Action applies one viewer operation and responds with
// the refreshed fragment. Unknown actions are a client error; out-of-
// range indices are absorbed by the viewer itself.
func ApiV1_Gallery_Action(supplements *Supplements) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		g, err := supplements.Registry.Get(name)
		if err != nil {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.ErrNotFound.Code).SendString(fmt.Sprintf("unknown gallery '%s'", name))
		}

		viewer := supplements.Viewers.Get(name)

		switch action := c.Params("action"); action {
		case "open":
			viewer.Open(g, c.QueryInt("index", 0))
		case "close":
			viewer.Close()
		case "next":
			viewer.Next()
		case "previous":
			viewer.Previous()
		case "goto":
			viewer.GoTo(c.QueryInt("index", 0))
		case "slideshow-start":
			viewer.StartSlideshow(time.Duration(c.QueryInt("interval", 0)) * time.Millisecond)
		case "slideshow-stop":
			viewer.StopSlideshow()
		default:
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.ErrBadRequest.Code).SendString(fmt.Sprintf("unknown gallery action '%s'", action))
		}

		return renderViewer(supplements, c, name)
	}
}

func renderViewer(supplements *Supplements, c *fiber.Ctx, name string) error {
	lang := c.Query("lang")
	if !validLang(supplements, lang) {
		lang = supplements.DefaultLanguage
	}

	snapshot := supplements.Viewers.Get(name).Snapshot()

	content, err := supplements.TemplateManager.Render("gallery-viewer", fiber.Map{
		"L":        supplements.Localization[lang],
		"Lang":     lang,
		"Snapshot": snapshot,
	})
	if err != nil {
		slog.Warn("failed to generate gallery viewer fragment",
			slog.String("gallery", name),
			slog.String("error", err.Error()),
		)
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(fiber.ErrInternalServerError.Code).SendString("failed to generate gallery viewer fragment")
	}

	return c.Type("html").Send(content)
}
