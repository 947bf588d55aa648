//go:build tools

// Package tools pins build-time code generators so `go mod tidy`
// keeps them in go.mod.
package tools

import (
	_ "google.golang.org/grpc/cmd/protoc-gen-go-grpc"
	_ "google.golang.org/protobuf/cmd/protoc-gen-go"
)
