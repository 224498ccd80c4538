// Package templates embeds the page and partial templates served by web.
package templates

import "embed"

//go:embed *.html pages/*.html partials/*.html
var FS embed.FS
