// Package service provides application-level operations over user task lists.
//
// Service methods return store sentinel errors (store.ErrUserNotFound,
// store.ErrTaskNotFound) unchanged for expected conditions and wrap anything
// else in a *TaskServiceError. The API layer maps both to HTTP responses.
package service
