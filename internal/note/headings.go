package note

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

// ExtractOutline extracts the heading outline of a markdown body using
// goldmark. The outline is carried onto node attributes so callers can see a
// note's structure without reparsing the body.
func ExtractOutline(body string) []graph.Heading {
	var outline []graph.Heading

	src := []byte(body)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var sb strings.Builder
		for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
			if textNode, ok := child.(*ast.Text); ok {
				sb.Write(textNode.Segment.Value(src))
			}
		}

		headingText := strings.TrimSpace(sb.String())
		if headingText != "" {
			outline = append(outline, graph.Heading{
				Level: heading.Level,
				Text:  headingText,
			})
		}

		return ast.WalkContinue, nil
	})

	return outline
}
