// Package proto holds the gRPC API definitions. Generated code lands under
// gen/proto and is not committed.
package proto

//go:generate protoc --proto_path=. --go_out=.. --go_opt=module=github.com/medalizer/blood-report-analyzer --go-grpc_out=.. --go-grpc_opt=module=github.com/medalizer/blood-report-analyzer bloodreport/v1/bloodreport.proto
