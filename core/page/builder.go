package page

import (
	"bytes"
	"html"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dmitrymomot/innkeeper/core/logger"
)

// Builder assembles Data for rendered pages. It is safe for concurrent use;
// everything it holds is read-only after NewBuilder returns.
type Builder struct {
	build  BuildInfo
	footer []FooterLink
	md     goldmark.Markdown
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used to report Markdown conversion failures.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMarkdown replaces the Markdown converter.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(b *Builder) {
		if md != nil {
			b.md = md
		}
	}
}

// NewBuilder captures the footer links from cfg once. Serve dirs without a
// label are left out, the order of the rest is kept.
func NewBuilder(cfg Config, build BuildInfo, opts ...Option) *Builder {
	b := &Builder{
		build: build,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Footnote),
		),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, d := range cfg.ServeDirs {
		if d.Label != "" {
			b.footer = append(b.footer, FooterLink{Path: d.Path, Label: d.Label})
		}
	}

	return b
}

// Build returns the page context for one rendered page.
func (b *Builder) Build(title string, site SiteConfig, claim *Claim, hasUnread bool) Data {
	footer := make([]FooterLink, len(b.footer))
	copy(footer, b.footer)

	return Data{
		Title:           title,
		SiteName:        site.SiteName,
		SiteDescription: b.markdown(site.Description),
		Claim:           claim,
		HasUnread:       hasUnread,
		SHA256:          b.build.SHA256,
		Version:         b.build.Version,
		GitCommit:       b.build.GitCommit,
		FooterLinks:     footer,
	}
}

// FooterLinks returns a copy of the footer links captured at startup.
func (b *Builder) FooterLinks() []FooterLink {
	out := make([]FooterLink, len(b.footer))
	copy(out, b.footer)
	return out
}

func (b *Builder) markdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := b.md.Convert([]byte(src), &buf); err != nil {
		b.logger.Warn("site description is not valid markdown", logger.Error(err))
		return html.EscapeString(src)
	}
	return buf.String()
}
