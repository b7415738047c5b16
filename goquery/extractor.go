// Package goquery implements pagetext.Extractor on top of goquery. It strips
// noise elements, picks the main content region from a fixed, ordered list of
// selectors and joins the region's paragraphs into plain text.
package goquery

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagetext"
)

// Ensure Extractor implements pagetext.Extractor at compile time.
var _ pagetext.Extractor = (*Extractor)(nil)

// sniffLen is how much of the input is inspected when deciding whether it is text.
const sniffLen = 512

// maxControlRatio is the share of control bytes in the sniffed prefix above
// which unrecognised input is treated as binary.
const maxControlRatio = 0.1

// ParagraphSeparator joins paragraph texts in the extracted content.
const ParagraphSeparator = "\n\n"

// NoiseSelector matches every element removed before any text is read.
const NoiseSelector = "script, style, nav, footer, header, aside, iframe, .ad, .ads, .advertisement"

// RegionSelectors lists the main content candidates in priority order.
// The first selector with any match in the cleaned document wins, and within
// a selector the first match in document order wins.
var RegionSelectors = []string{
	"article",
	"main",
	".content",
	"#content",
	".post",
	".article",
	".post-content",
	".entry-content",
}

// Extractor extracts the main readable text of a page using fixed
// structural heuristics. It holds no state and is safe for concurrent use.
type Extractor struct {
	regions []goquery.Matcher
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	regions := make([]goquery.Matcher, len(RegionSelectors))
	for i, sel := range RegionSelectors {
		regions[i] = goquery.Single(sel)
	}
	return &Extractor{regions: regions}
}

// Extract parses rawHTML and returns its title, main content and word count.
// The url is echoed into the result unchanged.
func (e *Extractor) Extract(rawHTML, url string) (*pagetext.Result, error) {
	if !isText(rawHTML) {
		return nil, pagetext.Errorf(pagetext.EEXTRACT, "content of %s is not valid text", url)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagetext.Errorf(pagetext.EEXTRACT, "failed to parse HTML: %v", err)
	}

	// Noise must be gone before title, region or paragraph lookups.
	doc.Find(NoiseSelector).Remove()

	body := find(doc.Selection, goquery.Single("body"))

	var content string
	if region := e.region(doc, body); region != nil {
		content = regionText(region)
	}

	// Second chance: fires only on empty output, not on a region without <p>.
	if content == "" && body != nil {
		content = joinParagraphs(body.Find("p"))
	}

	return &pagetext.Result{
		Title:     title(doc),
		Content:   content,
		URL:       url,
		WordCount: pagetext.CountWords(content),
	}, nil
}

// region returns the main content region of a cleaned document, falling back
// to body. Returns nil when neither exists.
func (e *Extractor) region(doc *goquery.Document, body *goquery.Selection) *goquery.Selection {
	for _, m := range e.regions {
		if sel := find(doc.Selection, m); sel != nil {
			return sel
		}
	}
	return body
}

// find returns the first element under root matched by m in document order,
// or nil if nothing matches.
func find(root *goquery.Selection, m goquery.Matcher) *goquery.Selection {
	sel := root.FindMatcher(m)
	if sel.Length() == 0 {
		return nil
	}
	return sel.First()
}

func title(doc *goquery.Document) string {
	sel := find(doc.Selection, goquery.Single("title"))
	if sel == nil {
		return pagetext.NoTitle
	}
	// Kept verbatim; only a title with no text at all counts as missing.
	text := sel.Text()
	if text == "" {
		return pagetext.NoTitle
	}
	return text
}

// isText reports whether s is readable markup rather than a binary payload.
// Stray NUL or control bytes inside otherwise textual input are tolerated.
func isText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	prefix := s[:min(len(s), sniffLen)]
	ct := http.DetectContentType([]byte(prefix))
	switch {
	case strings.HasPrefix(ct, "text/"):
		return true
	case ct == "application/octet-stream":
		return controlRatio(prefix) <= maxControlRatio
	default:
		// Recognised binary formats: pdf, images, archives, fonts, media.
		return false
	}
}

func controlRatio(s string) float64 {
	if s == "" {
		return 0
	}
	var n int
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\t', c == '\n', c == '\r', c == '\f':
		case c < 0x20, c == 0x7f:
			n++
		}
	}
	return float64(n) / float64(len(s))
}

// regionText joins the region's paragraphs, or returns its whole text when
// it has none.
func regionText(region *goquery.Selection) string {
	paragraphs := region.Find("p")
	if paragraphs.Length() > 0 {
		return joinParagraphs(paragraphs)
	}
	return strings.TrimSpace(region.Text())
}

func joinParagraphs(paragraphs *goquery.Selection) string {
	texts := make([]string, 0, paragraphs.Length())
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(p.Text()))
	})
	return strings.Join(texts, ParagraphSeparator)
}
