package apperr

// Kind identifies a failure condition. The set is closed: every Kind has a
// fixed display message and exactly one HTTP outcome in the response package.
type Kind uint8

const (
	Internal Kind = iota
	Custom
	Captcha
	NameExists
	InnCreateLimit
	UsernameInvalid
	WrongPassword
	Image
	Locked
	Hidden
	ReadOnly
	Validation
	NoJoinedInn
	FormRejection
	NotFound
	WriteInterval
	NonLogin
	Unauthorized
	Banned

	kindCount
)

var kindNames = [kindCount]string{
	Internal:        "internal",
	Custom:          "custom",
	Captcha:         "captcha",
	NameExists:      "name_exists",
	InnCreateLimit:  "inn_create_limit",
	UsernameInvalid: "username_invalid",
	WrongPassword:   "wrong_password",
	Image:           "image",
	Locked:          "locked",
	Hidden:          "hidden",
	ReadOnly:        "read_only",
	Validation:      "validation",
	NoJoinedInn:     "no_joined_inn",
	FormRejection:   "form_rejection",
	NotFound:        "not_found",
	WriteInterval:   "write_interval",
	NonLogin:        "non_login",
	Unauthorized:    "unauthorized",
	Banned:          "banned",
}

var kindMessages = [kindCount]string{
	Internal:        "internal server error",
	Custom:          "something went wrong",
	Captcha:         "wrong captcha",
	NameExists:      "the name already exists",
	InnCreateLimit:  "you have reached the inn creation limit",
	UsernameInvalid: "invalid username",
	WrongPassword:   "wrong username or password",
	Image:           "image processing failed",
	Locked:          "the post is locked",
	Hidden:          "the post is hidden",
	ReadOnly:        "the site is in read-only mode",
	Validation:      "validation failed",
	NoJoinedInn:     "you have not joined any inn",
	FormRejection:   "invalid form data",
	NotFound:        "not found",
	WriteInterval:   "you are posting too fast, please wait a moment",
	NonLogin:        "sign in required",
	Unauthorized:    "unauthorized",
	Banned:          "your account has been banned",
}

// Kinds returns every defined Kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// String returns the machine-readable name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// Message returns the human-readable text shown on error pages.
func (k Kind) Message() string {
	if !k.Valid() {
		return kindMessages[Internal]
	}
	return kindMessages[k]
}
