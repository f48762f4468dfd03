package router

import (
	"errors"
	"log/slog"

	"github.com/econectar/econectar-web/internal/mailer"
	"github.com/gofiber/fiber/v2"
)

type contactForm struct {
	Name      string `form:"name" validate:"required,max=200"`
	Email     string `form:"email" validate:"required,email"`
	Message   string `form:"message" validate:"required,max=5000"`
	Subscribe bool   `form:"subscribe"`
}

// ApiV1_Contact handles the landing-page contact form: validate,
// persist, mail, optionally subscribe. Responses are small HTML
// fragments swapped under the form.
func ApiV1_Contact(supplements *Supplements) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		lang := c.Query("lang")
		if !validLang(supplements, lang) {
			lang = supplements.DefaultLanguage
		}
		l := supplements.Localization[lang]

		form := &contactForm{}
		if err := c.BodyParser(form); err != nil {
			return renderContactResult(supplements, c, fiber.StatusBadRequest, l.Contact.InvalidInput)
		}
		if err := supplements.Validate.Struct(form); err != nil {
			return renderContactResult(supplements, c, fiber.StatusBadRequest, l.Contact.InvalidInput)
		}

		if _, err := supplements.ContactStore.SaveMessage(c.Context(), form.Name, form.Email, form.Message); err != nil {
			slog.Error("failed to persist contact message", slog.String("error", err.Error()))
			return renderContactResult(supplements, c, fiber.StatusInternalServerError, l.Contact.OnServerError)
		}

		if err := supplements.Mailer.SendContact(form.Name, form.Email, form.Message); err != nil {
			if errors.Is(err, mailer.ErrRateLimited) {
				return renderContactResult(supplements, c, fiber.StatusTooManyRequests, l.Contact.TooFrequent)
			}
			slog.Error("failed to mail contact message", slog.String("error", err.Error()))
			return renderContactResult(supplements, c, fiber.StatusInternalServerError, l.Contact.OnServerError)
		}

		if form.Subscribe {
			if err := supplements.ContactStore.Subscribe(c.Context(), form.Email); err != nil {
				slog.Warn("failed to subscribe contact sender", slog.String("error", err.Error()))
			}
		}

		return renderContactResult(supplements, c, fiber.StatusOK, l.Contact.Success)
	}
}

func renderContactResult(supplements *Supplements, c *fiber.Ctx, status int, message string) error {
	content, err := supplements.TemplateManager.Render("contact-result", fiber.Map{
		"Message": message,
		"IsError": status >= 400,
	})
	if err != nil {
		slog.Warn("failed to generate contact result fragment", slog.String("error", err.Error()))
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(fiber.ErrInternalServerError.Code).SendString(message)
	}
	return c.Type("html").Status(status).Send(content)
}
