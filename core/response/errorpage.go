package response

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/innkeeper/core/page"
)

// ErrorPage is the view model of the error page.
type ErrorPage struct {
	Page   page.Data
	Status string
	Error  string
}

// ErrorView turns an ErrorPage into a renderable component.
type ErrorView func(ErrorPage) templ.Component

// DefaultErrorView renders a minimal standalone error page that links the
// site stylesheet.
func DefaultErrorView(p ErrorPage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		esc := templ.EscapeString[string]

		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + esc(p.Page.Title) + ` - ` + esc(p.Page.SiteName) + `</title>`)
		b.WriteString(`<link rel="stylesheet" href="/static/style.css">`)
		b.WriteString(`</head><body><section class="section"><div class="container">`)
		b.WriteString(`<h1 class="title">` + esc(p.Status) + `</h1>`)
		b.WriteString(`<p class="subtitle">` + esc(p.Error) + `</p>`)
		b.WriteString(`<a href="/">` + esc(p.Page.SiteName) + `</a>`)
		b.WriteString(`</div></section><footer class="footer"><div class="content has-text-centered">`)
		for _, l := range p.Page.FooterLinks {
			b.WriteString(`<a href="` + esc(l.Path) + `">` + esc(l.Label) + `</a> `)
		}
		if p.Page.Version != "" {
			b.WriteString(`<p>v` + esc(p.Page.Version))
			if p.Page.GitCommit != "" {
				b.WriteString(` (` + esc(p.Page.GitCommit) + `)`)
			}
			b.WriteString(`</p>`)
		}
		b.WriteString(`</div></footer></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
