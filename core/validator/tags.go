package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"
)

// ErrInvalidTarget is returned when ValidateStruct receives something other than a pointer to struct.
var ErrInvalidTarget = errors.New("validator: must pass a pointer to struct")

// ValidatorFunc builds a Rule for a field value and the rule's parameters.
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"len":      lenValidator,
		"email":    emailValidator,
		"url":      urlValidator,
		"alphanum": alphanumValidator,
		"username": usernameValidator,
		"in":       inValidator,
		"regex":    regexValidator,
	}
)

// RegisterValidator adds a custom validator function to the registry.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates a struct based on its `validate` field tags.
// Rules are separated by semicolons and parameters follow a colon:
//
//	Title string `validate:"required;max:256"`
//
// It returns ValidationErrors when any rule fails.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrInvalidTarget
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	var errs ValidationErrors
	validateStruct(rv, "", &errs)

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStruct(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		sf := rt.Field(i)
		tag := sf.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		path := sf.Name
		if prefix != "" {
			path = prefix + "." + sf.Name
		}

		switch {
		case field.Kind() == reflect.Struct && tag == "":
			validateStruct(field, path, errs)
		case field.Kind() == reflect.Pointer:
			if field.IsNil() {
				if tag != "" {
					validateField(path, field, tag, errs)
				}
				continue
			}
			elem := field.Elem()
			if elem.Kind() == reflect.Struct && tag == "" {
				validateStruct(elem, path, errs)
			} else if tag != "" {
				validateField(path, elem, tag, errs)
			}
		case tag != "":
			validateField(path, field, tag, errs)
		}
	}
}

func validateField(path string, field reflect.Value, tag string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, raw := range strings.Split(tag, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		name, paramStr, _ := strings.Cut(raw, ":")
		name = strings.TrimSpace(name)

		var params []string
		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			// regex patterns may contain commas
			if name == "regex" {
				params = []string{paramStr}
			} else {
				for _, p := range strings.Split(paramStr, ",") {
					params = append(params, strings.TrimSpace(p))
				}
			}
		}

		fn, ok := registry[name]
		if !ok {
			continue
		}
		if rule := fn(path, field, params); !rule.Check() {
			errs.Add(rule.Error)
		}
	}
}
