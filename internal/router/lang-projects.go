package router

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func Lang_ProjectList(supplements *Supplements) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		lang := c.Params("lang")
		if !validLang(supplements, lang) {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.ErrNotFound.Code).SendString(fmt.Sprintf("server does not support '%s' language... yet??", lang))
		}

		return cachedPage(supplements, c, func() ([]byte, int, error) {
			projects, err := supplements.Library.Projects(lang)
			if err != nil {
				return nil, fiber.ErrInternalServerError.Code, fmt.Errorf("list projects: %w", err)
			}

			content, err := supplements.TemplateManager.Render("project-list", fiber.Map{
				"L":                  supplements.Localization[lang],
				"Lang":               lang,
				"AvailableLanguages": supplements.AvailableLanguages,
				"Projects":           projects,
				"PublishedYear":      "2026",
				"Title":              supplements.Localization[lang].Projects.Header,
			})
			if err != nil {
				return nil, fiber.ErrInternalServerError.Code, err
			}
			return content, fiber.StatusOK, nil
		})
	}
}

func Lang_ProjectPage(supplements *Supplements) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		lang := c.Params("lang")
		if !validLang(supplements, lang) {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.ErrNotFound.Code).SendString(fmt.Sprintf("server does not support '%s' language... yet??", lang))
		}
		slug := c.Params("slug")

		metadata, markdown, err := supplements.Library.ReadProject(lang, slug)
		if err != nil || metadata == nil {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.ErrNotFound.Code).SendString(fmt.Sprintf("failed to find '%s' project", slug))
		}

		return cachedPage(supplements, c, func() ([]byte, int, error) {
			var buf bytes.Buffer
			if err := supplements.MarkdownRenderer.Convert(markdown, &buf); err != nil {
				return nil, fiber.ErrInternalServerError.Code, fmt.Errorf("convert project markdown to html: %w", err)
			}

			content, err := supplements.TemplateManager.Render("project-page", fiber.Map{
				"L":                  supplements.Localization[lang],
				"Lang":               lang,
				"AvailableLanguages": supplements.AvailableLanguages,
				"Title":              metadata.Title,
				"Summary":            metadata.Summary,
				"PublishedDate":      metadata.PublishedTime.Format("2006-01-02"),
				"PublishedYear":      strconv.Itoa(metadata.PublishedTime.Year()),
				"Tags":               metadata.Tags,
				"ParsedMarkdown":     template.HTML(buf.String()),
			})
			if err != nil {
				return nil, fiber.ErrInternalServerError.Code, err
			}
			return content, fiber.StatusOK, nil
		})
	}
}
