package lightbox

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Extension that combines parser and renderer
type LightboxExtension struct {
	resolve URLResolver
}

func NewLightboxExtension(resolve URLResolver) goldmark.Extender {
	return &LightboxExtension{resolve: resolve}
}

func (e *LightboxExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(NewLightboxParser(), 500),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(NewLightboxHTMLRenderer(e.resolve), 500),
		),
	)
}
