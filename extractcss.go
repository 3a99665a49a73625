// Package extractcss extracts the CSS applied to a rendered web page.
// It loads the page in a headless browser, lets client-side scripts run,
// and concatenates the rule text of every stylesheet the document exposes,
// whether it came from a <link>, a <style> or a CSS-in-JS library.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, http/).
package extractcss
