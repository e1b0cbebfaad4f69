// Package proto holds the LLM gateway service definition. Run go generate
// to refresh the generated stubs after editing analyze.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative analyze.proto
