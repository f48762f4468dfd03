package lightbox

import (
	"github.com/econectar/econectar-web/internal/gallery"
	"github.com/yuin/goldmark/ast"
)

// LightboxBlock is a `{Gallery:<name>}` block in the AST. Its image
// lines carry object paths relative to the media base URL plus an
// optional caption.
type LightboxBlock struct {
	ast.BaseBlock
	Name   string
	Images []gallery.Image
}

var KindLightboxBlock = ast.NewNodeKind("LightboxBlock")

// Dump implements ast.Node.Dump
func (n *LightboxBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// Kind implements ast.Node.Kind
func (n *LightboxBlock) Kind() ast.NodeKind {
	return KindLightboxBlock
}
