// Package static serves files from disk or an fs.FS and builds cached
// in-memory bundles.
//
// Serving a directory:
//
//	r.Get("/static/*", adapt(static.ServeDir[*web.Context]("./static",
//		static.WithStripPrefix("/static"),
//	)))
//
// Precompressed "<file>.br" and "<file>.gz" siblings are served when the
// client accepts them. Requests for missing files redirect to /signin unless
// WithFallback says otherwise. Files that exist but fail to read produce a
// plain text 500 starting with "Unhandled internal error:".
//
// Serving a bundle computed once:
//
//	css := static.Bundle[*web.Context]("text/css",
//		"public, max-age=1209600, s-maxage=86400",
//		static.Concat(assets, "css/base.css", "css/main.css"),
//	)
package static
