package binder

import (
	"net/http"

	"github.com/dmitrymomot/innkeeper/core/apperr"
	"github.com/dmitrymomot/innkeeper/core/handler"
	"github.com/dmitrymomot/innkeeper/core/validator"
)

// Validatable is implemented by payloads that carry their own semantic checks.
// Payloads without it are validated through their `validate` struct tags.
type Validatable interface {
	Validate() error
}

// ValidatedForm holds a value that was decoded from the request body and
// passed validation. It can only be obtained from Validated.
type ValidatedForm[T any] struct {
	value T
	ok    bool
}

// Value returns the decoded and validated payload.
func (f ValidatedForm[T]) Value() T {
	return f.value
}

// Valid reports whether f came out of a successful Validated call.
func (f ValidatedForm[T]) Valid() bool {
	return f.ok
}

type validatedConfig[T any] struct {
	decode   Binder
	validate func(*T) error
}

// ValidatedOption replaces one step of the Validated pipeline.
type ValidatedOption[T any] func(*validatedConfig[T])

// WithDecoder replaces the default Form binder.
func WithDecoder[T any](b Binder) ValidatedOption[T] {
	return func(c *validatedConfig[T]) {
		if b != nil {
			c.decode = b
		}
	}
}

// WithValidator replaces the default validation step.
func WithValidator[T any](fn func(*T) error) ValidatedOption[T] {
	return func(c *validatedConfig[T]) {
		if fn != nil {
			c.validate = fn
		}
	}
}

// Validated decodes the request body into T and validates it, stopping at
// the first failure:
//   - decode failure returns an apperr FormRejection error and validation is not run
//   - validation failure returns an apperr Validation error wrapping the violations
func Validated[T any](r *http.Request, opts ...ValidatedOption[T]) (ValidatedForm[T], error) {
	cfg := &validatedConfig[T]{
		decode:   Form(),
		validate: validate[T],
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var v T
	if err := cfg.decode(r, &v); err != nil {
		return ValidatedForm[T]{}, apperr.FormRejectionError(err)
	}
	if err := cfg.validate(&v); err != nil {
		return ValidatedForm[T]{}, apperr.ValidationError(err)
	}

	return ValidatedForm[T]{value: v, ok: true}, nil
}

func validate[T any](v *T) error {
	if val, ok := any(v).(Validatable); ok {
		return val.Validate()
	}
	if val, ok := any(*v).(Validatable); ok {
		return val.Validate()
	}
	return validator.ValidateStruct(v)
}

// ValidatedHandler runs Validated before fn. Extraction errors are returned
// from the Response so the error handler presents them.
func ValidatedHandler[C handler.Context, T any](fn func(ctx C, form ValidatedForm[T]) handler.Response, opts ...ValidatedOption[T]) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		form, err := Validated(ctx.Request(), opts...)
		if err != nil {
			return func(http.ResponseWriter, *http.Request) error {
				return err
			}
		}
		return fn(ctx, form)
	}
}
