package router

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/econectar/econectar-web/config"
	"github.com/econectar/econectar-web/internal/contact"
	"github.com/econectar/econectar-web/internal/facts"
	"github.com/econectar/econectar-web/internal/gallery"
	"github.com/econectar/econectar-web/internal/lightbox"
	"github.com/econectar/econectar-web/internal/mailer"
	"github.com/econectar/econectar-web/internal/media"
	"github.com/econectar/econectar-web/internal/mediasync"
	"github.com/econectar/econectar-web/internal/templates"
	"github.com/econectar/econectar-web/locale"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

const defaultPageCacheTTL = 5 * time.Minute

// Supplements bundles everything the route handlers need.
type Supplements struct {
	Library            *media.Library
	Registry           *gallery.Registry
	Viewers            *ViewerPool
	Localization       map[string]*locale.LocaleConfig
	AvailableLanguages []config.AvailableLanguageConfig
	DefaultLanguage    string
	PageCache          *ristretto.Cache[string, []byte]
	PageCacheTTL       time.Duration
	FactGiver          *facts.FactGiver
	Mailer             *mailer.Mailer
	ContactStore       *contact.Store
	MediaSync          *mediasync.Scheduler
	TemplateManager    *templates.Manager
	MarkdownRenderer   goldmark.Markdown
	Validate           *validator.Validate
}

type Router struct {
	supplements *Supplements
	app         *fiber.App
}

func NewRouter(cfg *config.Config) (*Router, error) {
	supplements := &Supplements{
		AvailableLanguages: cfg.AvailableLanguages,
		DefaultLanguage:    cfg.DefaultLanguage,
		PageCacheTTL:       cfg.PageCacheTTL.Std(),
		Validate:           validator.New(validator.WithRequiredStructEnabled()),
	}
	if supplements.PageCacheTTL <= 0 {
		supplements.PageCacheTTL = defaultPageCacheTTL
	}

	storage, err := media.NewStorage(&cfg.Media.Storage)
	if err != nil {
		return nil, fmt.Errorf("fail to initialize media storage: %w", err)
	}
	supplements.Library = media.NewLibrary(storage, &cfg.Media)
	supplements.Registry = gallery.NewRegistry()

	supplements.Viewers = NewViewerPool(&gallery.ViewerConfig{
		Loader:             gallery.NewHTTPLoader(cfg.Gallery.LoadTimeout.Std()),
		TransitionDuration: cfg.Gallery.TransitionDuration.Std(),
		SlideshowInterval:  cfg.Gallery.SlideshowInterval.Std(),
		PlaceholderSrc:     cfg.Gallery.PlaceholderSrc,
	})

	supplements.Localization = make(map[string]*locale.LocaleConfig, len(cfg.AvailableLanguages))
	for _, lang := range cfg.AvailableLanguages {
		localeCfg, err := locale.InitConfig(cfg.LocalePath + lang.LocFile)
		if err != nil {
			return nil, fmt.Errorf("fail to initialize a locale: %w", err)
		}
		supplements.Localization[lang.Name] = localeCfg
	}

	supplements.MarkdownRenderer = goldmark.New(
		goldmark.WithExtensions(
			lightbox.NewLightboxExtension(supplements.Library.PublicURL),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
		),
	)

	supplements.PageCache, err = ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1e6,
		MaxCost:     1 << 28, // 256 MB
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("fail to initialize page cache: %w", err)
	}

	supplements.FactGiver, err = facts.NewFactGiver(supplements.Library, cfg.Media.FactsFileName, languageNames(cfg.AvailableLanguages))
	if err != nil {
		return nil, fmt.Errorf("fail to initialize fact giver: %w", err)
	}

	supplements.Mailer, err = mailer.NewMailer(&cfg.Mail, cfg.Contact.RateLimitTTL.Std())
	if err != nil {
		return nil, fmt.Errorf("fail to initialize mailer: %w", err)
	}

	supplements.ContactStore, err = contact.NewStore(&cfg.Contact.Db, "file://migrations")
	if err != nil {
		return nil, fmt.Errorf("fail to initialize contact store: %w", err)
	}

	supplements.MediaSync, err = mediasync.NewScheduler(supplements.Library, supplements.Registry, cfg.Media.RescanCron, nil)
	if err != nil {
		return nil, fmt.Errorf("fail to initialize media sync scheduler: %w", err)
	}

	supplements.TemplateManager, err = templates.NewManager(
		templates.Group{Name: "landing", Files: []string{"views/layouts/general-page.html", "views/pages/landing.html"}},
		templates.Group{Name: "project-list", Files: []string{"views/layouts/general-page.html", "views/pages/project-list.html"}},
		templates.Group{Name: "project-page", Files: []string{"views/layouts/general-page.html", "views/pages/project-page.html"}},
		templates.Group{Name: "thermal", Files: []string{"views/layouts/general-page.html", "views/pages/thermal.html"}},
		templates.Group{Name: "gallery-viewer", Files: []string{"views/partials/gallery-viewer.html"}},
		templates.Group{Name: "contact-result", Files: []string{"views/partials/contact-result.html"}},
	)
	if err != nil {
		return nil, fmt.Errorf("fail to initialize template manager: %w", err)
	}

	enablePrintRoutes := false
	if cfg.LogLevel <= slog.LevelDebug {
		enablePrintRoutes = true
	}

	app := fiber.New(fiber.Config{
		EnablePrintRoutes: enablePrintRoutes,
		ProxyHeader:       "X-Forwarded-For",
	})

	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	return &Router{supplements: supplements, app: app}, nil
}

func (r *Router) InitRoutes() {
	r.app.Get("/", Root(r.supplements))
	r.app.Get("/:lang", Lang_Landing(r.supplements))
	r.app.Get("/:lang/projects", Lang_ProjectList(r.supplements))
	r.app.Get("/:lang/projects/:slug", Lang_ProjectPage(r.supplements))
	r.app.Get("/:lang/thermal", Lang_Thermal(r.supplements))

	r.app.Get("/api/v1/gallery/:name", ApiV1_Gallery_Snapshot(r.supplements))
	r.app.Post("/api/v1/gallery/:name/:action", ApiV1_Gallery_Action(r.supplements))
	r.app.Post("/api/v1/contact", ApiV1_Contact(r.supplements))
	r.app.Post("/api/v1/thermal/calculate", ApiV1_Thermal_Calculate(r.supplements))

	r.app.Static("/", "./static")
}

func (r *Router) Listen(endpoint string) error {
	if err := r.app.Listen(endpoint); err != nil {
		return fmt.Errorf("error while running fiber server: %w", err)
	}
	return nil
}

func (r *Router) Close() (err error) {
	allErrors := make([]error, 0)
	if err = r.supplements.MediaSync.Close(); err != nil {
		allErrors = append(allErrors, fmt.Errorf("fail to shutdown media sync scheduler: %w", err))
	}
	if err = r.app.Shutdown(); err != nil {
		allErrors = append(allErrors, fmt.Errorf("fail to shutdown fiber server: %w", err))
	}
	if err = r.supplements.ContactStore.Close(); err != nil {
		allErrors = append(allErrors, fmt.Errorf("fail to close contact store: %w", err))
	}
	r.supplements.Viewers.CloseAll()
	r.supplements.Mailer.Close()
	r.supplements.PageCache.Close()
	return errors.Join(allErrors...)
}

func languageNames(langs []config.AvailableLanguageConfig) []string {
	names := make([]string, 0, len(langs))
	for _, lang := range langs {
		names = append(names, lang.Name)
	}
	return names
}

// validLang reports whether the path language is served.
func validLang(supplements *Supplements, lang string) bool {
	return slices.Contains(languageNames(supplements.AvailableLanguages), lang)
}

// cachedPage wraps a page renderer with the ristretto page cache, keyed
// by method, trimmed path and query string.
func cachedPage(supplements *Supplements, c *fiber.Ctx, render func() ([]byte, int, error)) error {
	cacheKey := fmt.Sprintf("%s.full-page.%s.%s", c.Method(), c.Path(), c.Request().URI().QueryString())

	if val, ok := supplements.PageCache.Get(cacheKey); val != nil && ok {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Status(fiber.StatusOK).Type("html").Send(val)
	}

	content, status, err := render()
	if err != nil {
		slog.Warn("failed to generate page", slog.String("page", c.Path()), slog.String("error", err.Error()))
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(status).SendString("failed to generate page")
	}

	if status >= 200 && status < 300 {
		go supplements.PageCache.SetWithTTL(cacheKey, content, int64(len(content)), supplements.PageCacheTTL)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Type("html").Send(content)
}
