package main

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// linkSelector matches anchor elements that carry an href attribute.
const linkSelector = "a[href]"

// ExtractLinks takes an HTML content as a string and returns the href values of its <a> tags,
// in document order and exactly as written. Anchors without an href are skipped.
// Malformed markup never fails: the parser recovers what it can and the rest is ignored.
func ExtractLinks(htmlContent string) []string {
	doc, err := parseDocument(htmlContent)
	if err != nil {
		return []string{}
	}

	links := []string{}
	doc.Find(linkSelector).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			links = append(links, href)
		}
	})
	return links
}

// parseDocument builds a best-effort tree for the content and wraps it for selector queries.
func parseDocument(htmlContent string) (*goquery.Document, error) {
	root, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(root), nil
}
