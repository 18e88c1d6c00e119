package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/innkeeper/core/handler"
)

type testContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{Context: r.Context(), w: w, r: r}
}

func (c *testContext) Request() *http.Request              { return c.r }
func (c *testContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *testContext) Param(string) string                 { return "" }
func (c *testContext) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}

func TestAdapt(t *testing.T) {
	t.Parallel()

	t.Run("renders response", func(t *testing.T) {
		t.Parallel()

		h := handler.Adapt(func(ctx *testContext) handler.Response {
			return func(w http.ResponseWriter, r *http.Request) error {
				w.WriteHeader(http.StatusAccepted)
				return nil
			}
		}, newTestContext, func(*testContext, error) {
			t.Fatal("error handler must not be called")
		})

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("routes response error to error handler", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		var got error
		h := handler.Adapt(func(ctx *testContext) handler.Response {
			return func(http.ResponseWriter, *http.Request) error { return boom }
		}, newTestContext, func(_ *testContext, err error) { got = err })

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.Error(t, got)
		assert.ErrorIs(t, got, boom)
	})

	t.Run("nil response is an error", func(t *testing.T) {
		t.Parallel()

		var got error
		h := handler.Adapt(func(*testContext) handler.Response { return nil },
			newTestContext, func(_ *testContext, err error) { got = err })

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})
}

func TestChain(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) handler.Middleware[*testContext] {
		return func(next handler.HandlerFunc[*testContext]) handler.HandlerFunc[*testContext] {
			return func(ctx *testContext) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	h := handler.Chain(func(*testContext) handler.Response {
		order = append(order, "handler")
		return func(http.ResponseWriter, *http.Request) error { return nil }
	}, mw("first"), mw("second"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	require.NoError(t, h(newTestContext(w, req))(w, req))
	assert.Equal(t, []string{"first", "second", "handler"}, order)
}
