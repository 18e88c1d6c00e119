package web

import "embed"

//go:embed assets/css/*.css
var assets embed.FS

// stylesheets are concatenated into /static/style.css in this order.
var stylesheets = []string{
	"assets/css/base.css",
	"assets/css/main.css",
}

const (
	stylesheetPath         = "/static/style.css"
	stylesheetContentType  = "text/css"
	stylesheetCacheControl = "public, max-age=1209600, s-maxage=86400"
)
