package response_test

import (
	"context"
	"net/http"
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
func (c *testContext) SetValue(any, any)                   {}
