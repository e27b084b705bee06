// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `go generate ./...` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/catalog_repository.go -destination=catalog_repository_mock.go -package=mocks
