package response

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/innkeeper/core/apperr"
)

// SigninPath is where unauthenticated visitors are sent.
const SigninPath = "/signin"

// Outcome is the HTTP result an error maps to: either a status for the
// error page or a redirect target.
type Outcome struct {
	Status   int
	Redirect string
}

// IsRedirect reports whether the outcome sends the client elsewhere.
func (o Outcome) IsRedirect() bool {
	return o.Redirect != ""
}

var outcomes = map[apperr.Kind]Outcome{
	apperr.Captcha:         {Status: http.StatusBadRequest},
	apperr.NameExists:      {Status: http.StatusBadRequest},
	apperr.InnCreateLimit:  {Status: http.StatusBadRequest},
	apperr.UsernameInvalid: {Status: http.StatusBadRequest},
	apperr.WrongPassword:   {Status: http.StatusBadRequest},
	apperr.Image:           {Status: http.StatusBadRequest},
	apperr.Locked:          {Status: http.StatusBadRequest},
	apperr.Hidden:          {Status: http.StatusBadRequest},
	apperr.ReadOnly:        {Status: http.StatusBadRequest},
	apperr.Validation:      {Status: http.StatusBadRequest},
	apperr.NoJoinedInn:     {Status: http.StatusBadRequest},
	apperr.FormRejection:   {Status: http.StatusBadRequest},
	apperr.NotFound:        {Status: http.StatusNotFound},
	apperr.WriteInterval:   {Status: http.StatusTooManyRequests},
	apperr.NonLogin:        {Status: http.StatusFound, Redirect: SigninPath},
	apperr.Unauthorized:    {Status: http.StatusUnauthorized},
	apperr.Banned:          {Status: http.StatusForbidden},
	apperr.Custom:          {Status: http.StatusInternalServerError},
	apperr.Internal:        {Status: http.StatusInternalServerError},
}

// Resolve maps err to its outcome. Errors outside the apperr taxonomy
// resolve to 500.
func Resolve(err error) Outcome {
	return ResolveKind(apperr.KindOf(err))
}

// ResolveKind maps an error kind to its outcome.
func ResolveKind(kind apperr.Kind) Outcome {
	if o, ok := outcomes[kind]; ok {
		return o
	}
	return Outcome{Status: http.StatusInternalServerError}
}

// StatusLine formats a status code the way the error page shows it,
// e.g. "404 Not Found".
func StatusLine(code int) string {
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}
