package lightbox

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// URLResolver maps an object path from a gallery block onto its public
// URL. Absolute URLs pass through untouched.
type URLResolver func(string) string

type LightboxHTMLRenderer struct {
	html.Config
	resolve URLResolver
}

func NewLightboxHTMLRenderer(resolve URLResolver, opts ...html.Option) renderer.NodeRenderer {
	r := &LightboxHTMLRenderer{
		Config:  html.NewConfig(),
		resolve: resolve,
	}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

func (r *LightboxHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindLightboxBlock, r.renderLightbox)
}

// renderLightbox emits the thumbnail grid for an embedded gallery. The
// viewer overlay itself is not rendered here; thumbnails carry the
// gallery name and index, and the page script drives the fragment API
// from those.
func (r *LightboxHTMLRenderer) renderLightbox(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	block := n.(*LightboxBlock)
	if len(block.Images) == 0 {
		return ast.WalkContinue, nil
	}

	w.WriteString(fmt.Sprintf("\n<div class=\"gallery-grid\" data-gallery=\"%s\">\n", escapeHTML(block.Name)))
	for i, img := range block.Images {
		src := img.Thumb
		if r.resolve != nil && !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
			src = r.resolve(src)
		}
		w.WriteString(fmt.Sprintf(
			"\t<button type=\"button\" class=\"gallery-thumb\" data-gallery=\"%s\" data-index=\"%d\">"+
				"<img src=\"%s\" alt=\"%s\" loading=\"lazy\"></button>\n",
			escapeHTML(block.Name), i, escapeHTML(src), escapeHTML(img.Caption)))
	}
	w.WriteString("</div>\n")

	return ast.WalkContinue, nil
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
