package extractor

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tariff-tracker/backend/internal/fetch"
)

// LinkList fetches an HTML page and returns href values of anchors inside
// containerSelector that end in suffixFilter, in document order, capped at
// limit. Anchors without an href are ignored.
func (e *Extractor) LinkList(ctx context.Context, pageURL, containerSelector, suffixFilter string, limit int) ([]string, error) {
	body, _, err := e.client.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &fetch.ParseError{URL: pageURL, Err: err}
	}

	var links []string
	doc.Find(containerSelector + " a").EachWithBreak(func(i int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok || !strings.HasSuffix(href, suffixFilter) {
			return true
		}
		links = append(links, href)
		return len(links) < limit
	})

	return links, nil
}
