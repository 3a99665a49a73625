package extractcss

import (
	"context"
	"strings"
)

// StyleSheet is one entry of a document's stylesheet list.
type StyleSheet struct {
	// Href is the absolute URL of a linked sheet, empty for <style> elements.
	Href string `json:"href"`
	// CSS is the concatenated cssText of the sheet's rules.
	CSS string `json:"css"`
	// Readable is false when the browser refused access to the rules,
	// which happens for cross-origin sheets.
	Readable bool `json:"readable"`
}

// ResolveStyleSheets fills in the text of unreadable linked sheets by
// fetching their href. Sheets without an href, or when fetcher is nil,
// are left as they are. Fetch failures are returned.
func ResolveStyleSheets(ctx context.Context, sheets []StyleSheet, fetcher Fetcher) error {
	if fetcher == nil {
		return nil
	}
	for i := range sheets {
		s := &sheets[i]
		if s.Readable || s.Href == "" {
			continue
		}
		css, err := fetcher.Fetch(ctx, s.Href)
		if err != nil {
			return err
		}
		s.CSS = css
		s.Readable = true
	}
	return nil
}

// JoinStyleSheets concatenates the text of sheets in order.
func JoinStyleSheets(sheets []StyleSheet) string {
	var b strings.Builder
	for _, s := range sheets {
		b.WriteString(s.CSS)
	}
	return b.String()
}
