package lightbox

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"

	"github.com/econectar/econectar-web/internal/gallery"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type LightboxParser struct{}

func NewLightboxParser() parser.BlockParser {
	return &LightboxParser{}
}

func (p *LightboxParser) Trigger() []byte {
	return []byte{'{'}
}

var headerRegex = regexp.MustCompile(`^\{Gallery:([A-Za-z0-9_\-]+)\}$`)

func (p *LightboxParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()

	if !bytes.HasPrefix(line, []byte("{Gallery")) {
		return nil, parser.NoChildren
	}

	trimmed := bytes.TrimSpace(line)
	parts := headerRegex.FindSubmatch(trimmed)
	if len(parts) < 2 {
		slog.Warn("invalid gallery header format", slog.String("line", string(trimmed)), slog.Int("submatch_count", len(parts)))
		return nil, parser.NoChildren
	}

	return &LightboxBlock{Name: string(parts[1])}, parser.NoChildren
}

func (p *LightboxParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, segment := reader.PeekLine()
	if len(line) == 0 || segment.Len() == 0 {
		return parser.Close
	}

	trimmed := bytes.TrimSpace(line)
	if bytes.Equal(trimmed, []byte("{Gallery}")) {
		reader.AdvanceLine()
		return parser.Close
	}

	block := node.(*LightboxBlock)
	lineStr := string(trimmed)

	parts := strings.SplitN(lineStr, "|", 2)
	src := strings.TrimSpace(parts[0])
	caption := ""

	if len(parts) > 1 {
		caption = strings.TrimSpace(parts[1])
	}

	block.Images = append(block.Images, gallery.Image{
		Thumb:   src,
		Full:    src,
		Caption: caption,
	})

	return parser.Continue | parser.NoChildren
}

func (p *LightboxParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
}

func (p *LightboxParser) CanInterruptParagraph() bool {
	return true
}

func (p *LightboxParser) CanAcceptIndentedLine() bool {
	return false
}
