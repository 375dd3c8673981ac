package source

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// TextFromHTML extracts readable text from an HTML document, preferring
// <main> or <article> over the whole <body> and skipping script, style, and
// navigation chrome. Block elements become line breaks so downstream
// normalization sees roughly the same shape as converter output.
func TextFromHTML(input []byte) string {
	root, err := html.Parse(bytes.NewReader(input))
	if err != nil || root == nil {
		return ""
	}
	content := firstElement(root, "main")
	if content == nil {
		content = firstElement(root, "article")
	}
	if content == nil {
		content = firstElement(root, "body")
	}
	if content == nil {
		return ""
	}
	var b strings.Builder
	walkText(&b, content)
	return b.String()
}

func firstElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func walkText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "header", "footer", "aside", "iframe":
			return
		case "br", "hr", "p", "li", "tr", "div", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "li", "tr", "div", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
}
