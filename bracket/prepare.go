package bracket

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

//go:embed frame.css
var frameCSS string

type PrepareOptions struct {
	// BaseURL resolves the provider's relative links and images.
	BaseURL string
}

// Prepare readies the provider's bracket markup for an iframe srcdoc. It drops scripts and
// inline handlers, makes href and src absolute against opts.BaseURL, and appends the
// override stylesheet after all of the provider's markup so it wins over any provider
// <style> of equal specificity.
func Prepare(raw string, opts PrepareOptions) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parse bracket html: %w", err)
	}

	var base *url.URL
	if opts.BaseURL != "" {
		base, err = url.Parse(strings.TrimRight(opts.BaseURL, "/") + "/")
		if err != nil {
			return "", fmt.Errorf("parse bracket base url: %w", err)
		}
	}

	doc.Find("script").Remove()
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		var handlers []string
		for _, attr := range s.Get(0).Attr {
			if strings.HasPrefix(strings.ToLower(attr.Key), "on") {
				handlers = append(handlers, attr.Key)
			}
		}
		for _, key := range handlers {
			s.RemoveAttr(key)
		}
	})

	if base != nil {
		for _, attr := range []string{"href", "src"} {
			doc.Find("[" + attr + "]").Each(func(_ int, s *goquery.Selection) {
				v, _ := s.Attr(attr)
				if abs, ok := absolutize(base, v); ok {
					s.SetAttr(attr, abs)
				}
			})
		}
	}

	style := "<style>\n" + frameCSS + "</style>"
	if body := doc.Find("body").First(); body.Length() > 0 {
		body.AppendHtml(style)
	} else {
		doc.Selection.AppendHtml(style)
	}

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("render bracket html: %w", err)
	}
	return out, nil
}

func absolutize(base *url.URL, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "#") {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() || strings.HasPrefix(ref, "//") {
		return "", false
	}
	return base.ResolveReference(u).String(), true
}
