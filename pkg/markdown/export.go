package markdown

import (
	"bytes"
	"fmt"
	stdhtml "html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// engine is stateless, so a single instance serves all conversions.
var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
		extension.TaskList,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&fenceRenderer{}, 100),
		),
	),
)

// ExportHTML renders markdown content to an HTML fragment. Fenced code
// blocks keep their info-string metadata: language class, filename and
// highlighted lines are emitted as attributes on the <pre> element.
func ExportHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// fenceRenderer overrides the default fenced-code-block rendering so the
// parsed info string survives the trip to HTML.
type fenceRenderer struct{}

func (r *fenceRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFence)
}

func (r *fenceRenderer) renderFence(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.FencedCodeBlock)

	if !entering {
		_, _ = w.WriteString("</code></pre>\n")
		return ast.WalkContinue, nil
	}

	info := ""
	if n.Info != nil {
		info = string(n.Info.Segment.Value(source))
	}
	meta := ParseCodeBlockMetadata(info)

	_, _ = w.WriteString("<pre")
	if meta.Filename != "" {
		_, _ = fmt.Fprintf(w, " data-filename=\"%s\"", stdhtml.EscapeString(meta.Filename))
	}
	if len(meta.Highlights) > 0 {
		_, _ = fmt.Fprintf(w, " data-highlight=\"%s\"", FormatLineHighlights(meta.Highlights))
	}
	_, _ = fmt.Fprintf(w, "><code class=\"language-%s\">", stdhtml.EscapeString(meta.Language))

	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		_, _ = w.WriteString(stdhtml.EscapeString(string(segment.Value(source))))
	}

	return ast.WalkContinue, nil
}
