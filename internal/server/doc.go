package server

// Stubs under gen/proto are produced from proto/docstaging/v1 and are not
// committed.
//
//go:generate protoc --proto_path=../../proto --go_out=../../gen/proto --go_opt=paths=source_relative --go-grpc_out=../../gen/proto --go-grpc_opt=paths=source_relative docstaging/v1/docstaging.proto
