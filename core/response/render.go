package response

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/innkeeper/core/handler"
)

// ErrNilComponent is reported by Render when no component is given.
var ErrNilComponent = errors.New("response: nil template component")

// Content-type shorthands accepted by Render.
var contentTypes = map[string]string{
	"html": "text/html; charset=utf-8",
	"css":  "text/css; charset=utf-8",
	"xml":  "application/xml; charset=utf-8",
	"txt":  "text/plain; charset=utf-8",
}

// ContentType expands a shorthand such as "html" into a full media type.
// Anything else is returned unchanged.
func ContentType(label string) string {
	if ct, ok := contentTypes[label]; ok {
		return ct
	}
	return label
}

// Render renders component into a buffer and writes it with 200 OK.
// See RenderWithStatus.
func Render(component templ.Component, contentType string) handler.Response {
	return RenderWithStatus(component, contentType, http.StatusOK)
}

// RenderWithStatus renders component into a buffer and writes it with the
// given status and content type. If rendering fails nothing from the
// template is written: the response becomes a 500 whose body is the error
// text and whose Content-Type is left for net/http to detect.
//
// The returned Response only fails on a network write error, so it is safe
// to use from error handlers.
func RenderWithStatus(component templ.Component, contentType string, status int) handler.Response {
	if status == 0 {
		status = http.StatusOK
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		var buf bytes.Buffer
		err := ErrNilComponent
		if component != nil {
			err = component.Render(r.Context(), &buf)
		}
		if err != nil {
			w.Header().Del("Content-Type")
			w.WriteHeader(http.StatusInternalServerError)
			_, werr := io.WriteString(w, err.Error())
			return werr
		}

		if ct := ContentType(contentType); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.WriteHeader(status)
		_, werr := w.Write(buf.Bytes())
		return werr
	}
}

// TemplateComponent adapts an html/template to templ.Component. An empty
// name executes the root template, otherwise the named one.
func TemplateComponent(tmpl *template.Template, name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if tmpl == nil {
			return ErrNilComponent
		}
		if name != "" {
			return tmpl.ExecuteTemplate(w, name, data)
		}
		return tmpl.Execute(w, data)
	})
}
