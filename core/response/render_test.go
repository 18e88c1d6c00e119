package response_test

import (
	"context"
	"errors"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/innkeeper/core/response"
)

func staticComponent(body string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, body)
		return err
	})
}

func failingComponent(partial string, err error) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, partial)
		return err
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		wantType    string
	}{
		{name: "html shorthand", contentType: "html", wantType: "text/html; charset=utf-8"},
		{name: "css shorthand", contentType: "css", wantType: "text/css; charset=utf-8"},
		{name: "full media type", contentType: "application/rss+xml", wantType: "application/rss+xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			err := response.Render(staticComponent("<h1>inn</h1>"), tt.contentType)(w, httptest.NewRequest(http.MethodGet, "/", nil))

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantType, w.Header().Get("Content-Type"))
			assert.Equal(t, "<h1>inn</h1>", w.Body.String())
		})
	}
}

func TestRenderWithStatus(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	err := response.RenderWithStatus(staticComponent("missing"), "html", http.StatusNotFound)(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "missing", w.Body.String())
}

func TestRender_Fallback(t *testing.T) {
	t.Parallel()

	t.Run("failure writes error text as 500", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		renderErr := errors.New("template: page:3: missing field")
		err := response.RenderWithStatus(failingComponent("<html>partial", renderErr), "html", http.StatusNotFound)(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, renderErr.Error(), w.Body.String())
		assert.Empty(t, w.Header().Get("Content-Type"))
	})

	t.Run("nil component", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		err := response.Render(nil, "html")(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, response.ErrNilComponent.Error(), w.Body.String())
	})
}

func TestTemplateComponent(t *testing.T) {
	t.Parallel()

	tmpl := template.Must(template.New("root").Parse(`{{define "inn"}}<b>{{.}}</b>{{end}}root:{{.}}`))

	t.Run("root template", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, response.Render(response.TemplateComponent(tmpl, "", "x<y"), "html")(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "root:x&lt;y", w.Body.String())
	})

	t.Run("named template", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, response.Render(response.TemplateComponent(tmpl, "inn", "Gophers"), "html")(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "<b>Gophers</b>", w.Body.String())
	})

	t.Run("unknown template falls back to 500", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, response.Render(response.TemplateComponent(tmpl, "nope", nil), "html")(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "nope")
	})
}
