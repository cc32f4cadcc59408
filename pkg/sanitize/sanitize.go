// Package sanitize cleans user-supplied blog HTML.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// Sanitizer applies the blog content allow-list. Safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New builds the blog policy: common text and table markup, headings and images.
// Script and style elements are dropped together with their content.
func New() *Sanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"address", "article", "aside", "footer", "header", "hgroup", "main", "nav", "section",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"blockquote", "dd", "div", "dl", "dt", "figcaption", "figure", "hr", "li", "ol", "p", "pre", "ul",
		"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn", "em", "i", "kbd", "mark",
		"q", "rb", "rp", "rt", "rtc", "ruby", "s", "samp", "small", "span", "strong", "sub", "sup",
		"time", "u", "var", "wbr",
		"caption", "col", "colgroup", "table", "tbody", "td", "tfoot", "th", "thead", "tr",
		"img",
	)

	p.AllowAttrs("href", "name", "target").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowAttrs("width", "height").Matching(bluemonday.NumberOrPercent).OnElements("img")

	p.AllowURLSchemes("http", "https", "ftp", "mailto", "tel")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)

	return &Sanitizer{policy: p}
}

// HTML returns content with everything outside the allow-list removed.
func (s *Sanitizer) HTML(content string) string {
	return s.policy.Sanitize(content)
}
