// Package mocks provides centralized mock implementations for testing.
//
// Each mock is a struct with one function field per interface method. A nil
// function field falls back to the mock's default return values, so tests
// only wire up the behavior they care about:
//
//	mockStore := &mocks.MockTaskStore{
//	    ListTasksFn: func(ctx context.Context, userID string) ([]domain.Task, error) {
//	        return nil, store.ErrUserNotFound
//	    },
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Assert interface conformance in the consuming package's tests
package mocks
