package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/innkeeper/core/handler"
	"github.com/dmitrymomot/innkeeper/core/response"
)

func TestRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		resp       handler.Response
		wantStatus int
	}{
		{name: "found", resp: response.Redirect("/inn/0"), wantStatus: http.StatusFound},
		{name: "permanent", resp: response.RedirectPermanent("/inn/0"), wantStatus: http.StatusMovedPermanently},
		{name: "see other", resp: response.RedirectSeeOther("/inn/0"), wantStatus: http.StatusSeeOther},
		{name: "invalid status falls back to found", resp: response.RedirectWithStatus("/inn/0", http.StatusOK), wantStatus: http.StatusFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			err := tt.resp(w, httptest.NewRequest(http.MethodGet, "/", nil))

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "/inn/0", w.Header().Get("Location"))
			assert.Empty(t, w.Body.String())
		})
	}
}

func TestRedirect_HTMX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		resp       handler.Response
		wantStatus int
	}{
		{name: "found", resp: response.Redirect("/signin"), wantStatus: http.StatusFound},
		{name: "see other", resp: response.RedirectSeeOther("/signin"), wantStatus: http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/post", nil)
			req.Header.Set(response.HeaderHXRequest, "true")
			w := httptest.NewRecorder()

			require.NoError(t, tt.resp(w, req))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "/signin", w.Header().Get("Location"))
			assert.Equal(t, "/signin", w.Header().Get(response.HeaderHXRedirect))
			assert.Empty(t, w.Body.String())
		})
	}
}
