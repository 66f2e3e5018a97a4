// Package mocks provides generated mock implementations of the repository
// ports in internal/core.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks.
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	sessions := mocks.NewMockSessionRepository(ctrl)
//	sessions.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(&session, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -source=../core/interfaces.go -destination=core_mocks.go -package=mocks
