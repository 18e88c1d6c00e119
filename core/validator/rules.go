package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

func pass() Rule {
	return Rule{Check: func() bool { return true }}
}

func violation(field, message, key string, values map[string]any) ValidationError {
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

func requiredValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool {
			switch value.Kind() {
			case reflect.String:
				return strings.TrimSpace(value.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return value.Len() > 0
			case reflect.Pointer, reflect.Interface:
				return !value.IsNil()
			default:
				return !value.IsZero()
			}
		},
		Error: violation(field, "field is required", "validation.required", nil),
	}
}

// Length bounds on strings count characters, not bytes.
func minValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}

	switch value.Kind() {
	case reflect.String:
		n, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return utf8.RuneCountInString(value.String()) >= n },
			Error: violation(field, fmt.Sprintf("must be at least %d characters long", n), "validation.min_length", map[string]any{"min": n}),
		}
	case reflect.Slice, reflect.Array:
		n, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return value.Len() >= n },
			Error: violation(field, fmt.Sprintf("must have at least %d items", n), "validation.min_items", map[string]any{"min": n}),
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Int() >= n },
			Error: violation(field, fmt.Sprintf("must be at least %d", n), "validation.min", map[string]any{"min": n}),
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Uint() >= n },
			Error: violation(field, fmt.Sprintf("must be at least %d", n), "validation.min", map[string]any{"min": n}),
		}
	default:
		return pass()
	}
}

func maxValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}

	switch value.Kind() {
	case reflect.String:
		n, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return utf8.RuneCountInString(value.String()) <= n },
			Error: violation(field, fmt.Sprintf("must be at most %d characters long", n), "validation.max_length", map[string]any{"max": n}),
		}
	case reflect.Slice, reflect.Array:
		n, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return value.Len() <= n },
			Error: violation(field, fmt.Sprintf("must have at most %d items", n), "validation.max_items", map[string]any{"max": n}),
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Int() <= n },
			Error: violation(field, fmt.Sprintf("must be at most %d", n), "validation.max", map[string]any{"max": n}),
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Uint() <= n },
			Error: violation(field, fmt.Sprintf("must be at most %d", n), "validation.max", map[string]any{"max": n}),
		}
	default:
		return pass()
	}
}

func lenValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return pass()
	}
	n, _ := strconv.Atoi(params[0])

	switch value.Kind() {
	case reflect.String:
		return Rule{
			Check: func() bool { return utf8.RuneCountInString(value.String()) == n },
			Error: violation(field, fmt.Sprintf("must be exactly %d characters long", n), "validation.exact_length", map[string]any{"len": n}),
		}
	case reflect.Slice, reflect.Array:
		return Rule{
			Check: func() bool { return value.Len() == n },
			Error: violation(field, fmt.Sprintf("must have exactly %d items", n), "validation.exact_items", map[string]any{"len": n}),
		}
	default:
		return pass()
	}
}

// Empty strings pass the format rules below; combine with required when needed.

func emailValidator(field string, value reflect.Value, _ []string) Rule {
	if value.Kind() != reflect.String {
		return pass()
	}
	return Rule{
		Check: func() bool {
			s := value.String()
			if s == "" {
				return true
			}
			addr, err := mail.ParseAddress(s)
			return err == nil && addr.Address == s
		},
		Error: violation(field, "must be a valid email address", "validation.email", nil),
	}
}

func urlValidator(field string, value reflect.Value, _ []string) Rule {
	if value.Kind() != reflect.String {
		return pass()
	}
	return Rule{
		Check: func() bool {
			s := value.String()
			if s == "" {
				return true
			}
			u, err := url.ParseRequestURI(s)
			return err == nil && u.Scheme != "" && u.Host != ""
		},
		Error: violation(field, "must be a valid URL", "validation.url", nil),
	}
}

func alphanumValidator(field string, value reflect.Value, _ []string) Rule {
	if value.Kind() != reflect.String {
		return pass()
	}
	return Rule{
		Check: func() bool {
			for _, r := range value.String() {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					return false
				}
			}
			return true
		},
		Error: violation(field, "must contain only letters and digits", "validation.alphanum", nil),
	}
}

// usernameValidator accepts letters, digits and underscores, starting with a letter.
func usernameValidator(field string, value reflect.Value, _ []string) Rule {
	if value.Kind() != reflect.String {
		return pass()
	}
	return Rule{
		Check: func() bool {
			s := value.String()
			if s == "" {
				return true
			}
			for i, r := range s {
				if i == 0 && !unicode.IsLetter(r) {
					return false
				}
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
					return false
				}
			}
			return true
		},
		Error: violation(field, "must start with a letter and contain only letters, digits and underscores", "validation.username", nil),
	}
}

func inValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String || len(params) == 0 {
		return pass()
	}
	return Rule{
		Check: func() bool { return value.String() == "" || slices.Contains(params, value.String()) },
		Error: violation(field, "must be one of: "+strings.Join(params, ", "), "validation.in", map[string]any{"values": params}),
	}
}

var regexCache sync.Map

func compileCached(pattern string) (*regexp.Regexp, error) {
	if re, ok := regexCache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	regexCache.Store(pattern, re)
	return re, nil
}

func regexValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String || len(params) < 1 {
		return pass()
	}
	pattern := params[0]
	return Rule{
		Check: func() bool {
			re, err := compileCached(pattern)
			if err != nil {
				return false
			}
			return re.MatchString(value.String())
		},
		Error: violation(field, "has an invalid format", "validation.regex", map[string]any{"pattern": pattern}),
	}
}
