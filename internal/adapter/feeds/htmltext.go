package feeds

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText flattens an HTML fragment to text. Block elements become line
// breaks and runs of blank space collapse. Input that is not HTML comes back
// trimmed.
func PlainText(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return collapse(builder.String())
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		switch node.Data {
		case "script", "style", "head":
			return
		case "br", "p", "li", "div", "h1", "h2", "h3", "h4", "blockquote":
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li" || node.Data == "div") {
		builder.WriteRune('\n')
	}
}

// collapse squeezes spaces inside each line and drops empty lines.
func collapse(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
