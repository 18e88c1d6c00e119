// Package binder decodes HTTP form bodies into structs and runs the
// decode-then-validate pipeline used by write endpoints.
//
// Plain decoding:
//
//	var req CreatePost
//	if err := binder.Form()(r, &req); err != nil {
//		// errors.Is(err, binder.ErrFailedToParseForm)
//	}
//
// Validated extraction, generic over the payload type:
//
//	type CreatePost struct {
//		Title   string `form:"title" validate:"required;max:256"`
//		Content string `form:"content" validate:"required;max:65535"`
//	}
//
//	form, err := binder.Validated[CreatePost](r)
//	if err != nil {
//		return response.Error(err) // FormRejection or Validation kind
//	}
//	post := form.Value()
//
// Payloads implementing Validatable use their own Validate method instead of
// struct tags. ValidatedHandler wraps the pipeline around a typed handler.
package binder
