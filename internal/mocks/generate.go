// Package mocks provides gomock doubles of the core ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	drivers := mocks.NewMockResolver[model.Driver](ctrl)
//	drivers.EXPECT().Exists(gomock.Any(), int64(10)).Return(true, nil)
package mocks

// Generate mock for the generic Resolver interface from the repo port
// package. This creates MockResolver[T] with the Exists and Fetch
// methods.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=resolver_mock.go github.com/momeni/pitlane/pkg/core/repo Resolver
