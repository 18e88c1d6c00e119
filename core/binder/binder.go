package binder

import "net/http"

// Binder decodes request data into the value pointed to by v.
type Binder func(r *http.Request, v any) error
