// Package views embeds the HTML templates and builds the fiber view engine.
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"venue-booking/internal/utils"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

// New returns an engine over the embedded templates with the datetime
// filter registered. Templates are addressed without their extension, for
// example "pages/home".
func New() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("datetime", utils.FormatDateTime)
	return engine
}
