// Package page builds the shared context every rendered page receives:
// site identity, the viewer's claim, the unread flag, build information,
// and the footer links derived from the configured serve directories.
//
//	b := page.NewBuilder(cfg, page.BuildInfo{Version: "1.4.0"})
//	data := b.Build("Error", page.DefaultSiteConfig(), nil, false)
//
// Footer links are computed once in NewBuilder, so Build never reads
// configuration and has no failure path.
package page
