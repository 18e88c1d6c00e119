package binder_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/innkeeper/core/apperr"
	"github.com/dmitrymomot/innkeeper/core/binder"
	"github.com/dmitrymomot/innkeeper/core/handler"
	"github.com/dmitrymomot/innkeeper/core/validator"
)

type createInn struct {
	Name        string `form:"inn_name" validate:"required;max:64"`
	Description string `form:"description" validate:"required"`
	Topics      string `form:"topics"`
}

type signup struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Confirm  string `form:"password2"`
}

var errPasswordMismatch = errors.New("passwords do not match")

func (s *signup) Validate() error {
	if s.Password != s.Confirm {
		return errPasswordMismatch
	}
	return nil
}

func TestValidated(t *testing.T) {
	t.Parallel()

	t.Run("decodes and validates", func(t *testing.T) {
		t.Parallel()

		req := newFormRequest(url.Values{
			"inn_name":    {"Gophers"},
			"description": {"All about Go"},
		})

		form, err := binder.Validated[createInn](req)
		require.NoError(t, err)
		assert.True(t, form.Valid())
		assert.Equal(t, "Gophers", form.Value().Name)
		assert.Equal(t, "All about Go", form.Value().Description)
	})

	t.Run("struct tag violations become validation error", func(t *testing.T) {
		t.Parallel()

		req := newFormRequest(url.Values{"inn_name": {strings.Repeat("x", 65)}})

		form, err := binder.Validated[createInn](req)
		require.Error(t, err)
		assert.False(t, form.Valid())
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))

		var violations validator.ValidationErrors
		require.ErrorAs(t, err, &violations)
		assert.True(t, violations.Has("Name"))
		assert.True(t, violations.Has("Description"))
	})

	t.Run("validatable payload uses its own checks", func(t *testing.T) {
		t.Parallel()

		req := newFormRequest(url.Values{
			"username":  {"alice"},
			"password":  {"one"},
			"password2": {"two"},
		})

		_, err := binder.Validated[signup](req)
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		assert.ErrorIs(t, err, errPasswordMismatch)
	})

	t.Run("decode failure skips validation", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		called := false
		_, err := binder.Validated(req, binder.WithValidator(func(*createInn) error {
			called = true
			return nil
		}))

		require.Error(t, err)
		assert.False(t, called)
		assert.Equal(t, apperr.FormRejection, apperr.KindOf(err))
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("custom decoder and validator", func(t *testing.T) {
		t.Parallel()

		decode := func(_ *http.Request, v any) error {
			v.(*createInn).Name = "decoded"
			return nil
		}
		rejected := errors.New("rejected")
		validate := func(v *createInn) error {
			if v.Name == "decoded" {
				return rejected
			}
			return nil
		}

		_, err := binder.Validated(newFormRequest(nil),
			binder.WithDecoder[createInn](decode),
			binder.WithValidator(validate),
		)
		assert.ErrorIs(t, err, rejected)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	})
}

func TestValidatedHandler(t *testing.T) {
	t.Parallel()

	h := binder.ValidatedHandler(func(ctx *testContext, form binder.ValidatedForm[createInn]) handler.Response {
		return func(w http.ResponseWriter, _ *http.Request) error {
			_, err := w.Write([]byte(form.Value().Name))
			return err
		}
	})

	t.Run("valid form reaches handler", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := newFormRequest(url.Values{"inn_name": {"Gophers"}, "description": {"d"}})

		err := h(&testContext{w: w, r: req})(w, req)
		require.NoError(t, err)
		assert.Equal(t, "Gophers", w.Body.String())
	})

	t.Run("invalid form returns error without calling handler", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := newFormRequest(url.Values{})

		err := h(&testContext{w: w, r: req})(w, req)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		assert.Empty(t, w.Body.String())
	})
}

type testContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c *testContext) Request() *http.Request              { return c.r }
func (c *testContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *testContext) Param(string) string                 { return "" }
func (c *testContext) SetValue(any, any)                   {}
