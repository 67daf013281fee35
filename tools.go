//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools are pinned with the go.mod tool directive:
// - github.com/pressly/goose/v3/cmd/goose (go tool goose -dir migrations postgres "$DATABASE_DSN" status)
//
// Test doubles (*_mock_test.go, mocks_test.go) follow the github.com/matryer/moq layout.
