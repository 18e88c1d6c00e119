package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"reflect"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

const (
	mimeFormURLEncoded = "application/x-www-form-urlencoded"
	mimeMultipartForm  = "multipart/form-data"
)

type formConfig struct {
	maxMemory int64
}

// FormOption configures the form binder.
type FormOption func(*formConfig)

// WithMaxMemory limits the multipart bytes kept in memory; the rest spills to disk.
func WithMaxMemory(n int64) FormOption {
	return func(c *formConfig) {
		if n > 0 {
			c.maxMemory = n
		}
	}
}

// Form decodes application/x-www-form-urlencoded and multipart/form-data
// bodies into a struct.
//
// Struct tags:
//   - `form:"name"` binds the form field "name", `form:"-"` skips the field
//   - `file:"name"` binds the uploaded file "name" (*multipart.FileHeader or a slice of them)
//
// Scalars, slices of scalars, and pointers to scalars are supported.
// Fields without a value in the body keep their zero value.
func Form(opts ...FormOption) Binder {
	cfg := &formConfig{maxMemory: DefaultMaxMemory}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected %s or %s", ErrMissingContentType, mimeFormURLEncoded, mimeMultipartForm)
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: malformed content type", ErrFailedToParseForm)
		}

		var (
			values map[string][]string
			files  map[string][]*multipart.FileHeader
		)

		switch mediaType {
		case mimeFormURLEncoded:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case mimeMultipartForm:
			if !validateBoundary(params["boundary"]) {
				return fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(cfg.maxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value
			files = r.MultipartForm.File

		default:
			return fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mediaType, mimeFormURLEncoded, mimeMultipartForm)
		}

		// multipart cleanup is left to the caller so files stay readable after binding
		return bindFormAndFiles(v, values, files)
	}
}

func bindFormAndFiles(v any, values map[string][]string, files map[string][]*multipart.FileHeader) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrFailedToParseForm)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", ErrFailedToParseForm)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		if name := tagName(sf.Tag.Get("form")); name != "" {
			if vals := values[name]; len(vals) > 0 {
				if err := setFieldValue(field, sf.Type, vals); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrFailedToParseForm, sf.Name, err)
				}
			}
		}

		if name := tagName(sf.Tag.Get("file")); name != "" && files != nil {
			if headers := files[name]; len(headers) > 0 {
				if err := setFileField(field, sf.Type, headers); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrFailedToParseForm, sf.Name, err)
				}
			}
		}
	}

	return nil
}

// tagName returns the parameter name of a struct tag, or "" when the field is skipped.
func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}

var fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))

func setFileField(field reflect.Value, fieldType reflect.Type, headers []*multipart.FileHeader) error {
	for _, fh := range headers {
		fh.Filename = sanitizeFilename(fh.Filename)
	}

	switch {
	case fieldType == fileHeaderType:
		field.Set(reflect.ValueOf(headers[0]))
	case fieldType.Kind() == reflect.Slice && fieldType.Elem() == fileHeaderType:
		slice := reflect.MakeSlice(fieldType, len(headers), len(headers))
		for i, fh := range headers {
			slice.Index(i).Set(reflect.ValueOf(fh))
		}
		field.Set(slice)
	default:
		return fmt.Errorf("unsupported type for file field: %v", fieldType)
	}
	return nil
}

// sanitizeFilename strips directories and NUL bytes from an uploaded file name.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	switch filename {
	case ".", "..", "", "/":
		return "unnamed"
	}
	return filename
}
