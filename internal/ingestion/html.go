package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const noiseSelector = "nav, footer, script, style, noscript, .ad, .advertisement, .ads, .cookie-banner, .popup"

const blockSelector = "p, div, section, article, li, tr, h1, h2, h3, h4, h5, h6"

// HTMLToText extracts line-structured text from an HTML résumé export. Block
// elements end a line, list items become "- " bullets and <br> is a newline.
func HTMLToText(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()
	for _, n := range doc.Find("br").Nodes {
		n.Parent.InsertBefore(textNode("\n"), n)
	}
	for _, n := range doc.Find("li").Nodes {
		n.InsertBefore(textNode("- "), n.FirstChild)
	}
	for _, n := range doc.Find(blockSelector).Nodes {
		n.AppendChild(textNode("\n"))
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	return cleanWhitespace(body.Text()), nil
}

func textNode(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// cleanWhitespace trims every line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
