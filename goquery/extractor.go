// Package goquery implements a static extractcss.Extractor that reads the
// CSS a server sends without running any of the page's scripts.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/extractcss"
)

// Ensure Extractor implements extractcss.Extractor at compile time.
var _ extractcss.Extractor = (*Extractor)(nil)

// styleSelector matches the elements that contribute stylesheets, in
// document order.
const styleSelector = `link[rel~="stylesheet"][href], style`

// Extractor collects CSS from the server-rendered HTML of a page. Linked
// stylesheets are fetched and included as raw text, <style> contents are
// included verbatim. Styles added by scripts are not seen.
type Extractor struct {
	fetcher extractcss.Fetcher
}

// NewExtractor creates a new Extractor that retrieves pages and stylesheets
// through fetcher.
func NewExtractor(fetcher extractcss.Fetcher) *Extractor {
	return &Extractor{fetcher: fetcher}
}

// Extract fetches the page at pageURL and concatenates its stylesheets in
// document order. Options.WaitUntil has no effect since nothing is rendered.
func (e *Extractor) Extract(ctx context.Context, pageURL string, opts extractcss.Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	base, err := url.Parse(pageURL)
	if err != nil || !base.IsAbs() {
		return "", extractcss.Errorf(extractcss.EINVALID, "invalid page URL %q", pageURL)
	}

	html, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	sheets, err := StyleSheets(html, base)
	if err != nil {
		return "", err
	}

	if err := extractcss.ResolveStyleSheets(ctx, sheets, e.fetcher); err != nil {
		return "", err
	}

	return extractcss.JoinStyleSheets(sheets), nil
}

// Close closes the underlying fetcher.
func (e *Extractor) Close() error {
	return e.fetcher.Close()
}

// StyleSheets lists the stylesheets declared in html. Linked sheets are
// returned unread with their href resolved against the document base;
// <style> elements are returned with their text.
func StyleSheets(html string, pageURL *url.URL) ([]extractcss.StyleSheet, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, extractcss.Errorf(extractcss.EINVALID, "failed to parse HTML: %v", err)
	}

	base := documentBase(doc, pageURL)

	var sheets []extractcss.StyleSheet
	doc.Find(styleSelector).Each(func(_ int, sel *goquery.Selection) {
		// Template content is inert
		if sel.ParentsFiltered("template").Length() > 0 {
			return
		}

		if goquery.NodeName(sel) == "style" {
			sheets = append(sheets, extractcss.StyleSheet{CSS: sel.Text(), Readable: true})
			return
		}

		if _, disabled := sel.Attr("disabled"); disabled || hasToken(sel.AttrOr("rel", ""), "alternate") {
			return
		}
		href, err := base.Parse(strings.TrimSpace(sel.AttrOr("href", "")))
		if err != nil || (href.Scheme != "http" && href.Scheme != "https") {
			return
		}
		href.Fragment = ""
		sheets = append(sheets, extractcss.StyleSheet{Href: href.String()})
	})

	return sheets, nil
}

// documentBase honours a <base href> element when present.
func documentBase(doc *goquery.Document, pageURL *url.URL) *url.URL {
	href, ok := doc.Find("base[href]").First().Attr("href")
	if !ok {
		return pageURL
	}
	u, err := pageURL.Parse(strings.TrimSpace(href))
	if err != nil {
		return pageURL
	}
	return u
}

func hasToken(list, token string) bool {
	for _, f := range strings.Fields(strings.ToLower(list)) {
		if f == token {
			return true
		}
	}
	return false
}
