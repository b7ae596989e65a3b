// Package textclean turns upstream article snippets into single-line plain text.
package textclean

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText strips markup, decodes entities and collapses all whitespace to single spaces.
func PlainText(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if !strings.ContainsAny(input, "<&") {
		return collapse(input)
	}
	return collapse(htmlToText(input))
}

func htmlToText(input string) string {
	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
		if isBlock(node.Data) {
			builder.WriteRune(' ')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && isBlock(node.Data) {
		builder.WriteRune(' ')
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "br", "p", "li", "div", "ul", "ol", "h1", "h2", "h3", "h4":
		return true
	}
	return false
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
