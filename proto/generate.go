// Package proto holds the wire and storage contracts. The Go packages next to
// the .proto files are generated; run go generate from this directory after
// editing a contract.
package proto

//go:generate protoc -I .. --go_out=.. --go_opt=module=job-chat --go-grpc_out=.. --go-grpc_opt=module=job-chat ../proto/notification.proto
//go:generate protoc -I .. --go_out=.. --go_opt=module=job-chat ../proto/storage.proto
