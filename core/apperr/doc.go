// Package apperr defines the application's error taxonomy.
//
// Failures are reported as *Error values tagged with a Kind. They travel up
// through business logic unchanged and are turned into HTTP responses in one
// place only, the response.Presenter:
//
//	post, err := store.Post(ctx, id)
//	if err != nil {
//		return response.Error(apperr.ErrNotFound)
//	}
//
// Errors that are not part of the taxonomy are treated as Internal.
package apperr
