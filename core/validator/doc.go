// Package validator provides rule-based validation of struct values.
//
// Rules are declared with `validate` tags, separated by semicolons:
//
//	type SignUp struct {
//		Username string `form:"username" validate:"required;min:1;max:32;username"`
//		Password string `form:"password" validate:"required;min:7"`
//		Email    string `form:"email" validate:"email"`
//	}
//
//	if err := validator.ValidateStruct(&req); err != nil {
//		var violations validator.ValidationErrors
//		errors.As(err, &violations) // per-field details
//	}
//
// Available rules: required, min, max, len, email, url, alphanum, username,
// in, regex. RegisterValidator adds custom rules. Apply runs ad-hoc Rules
// for checks that do not fit a tag.
package validator
