// Package rpc is the wire contract between the userdir server and its
// clients.
//
// Messages and the Directory service stubs are generated from
// proto/userdir/v1/directory.proto. Identity timestamps travel as
// google.protobuf.Timestamp and calls without a payload take
// google.protobuf.Empty. Directory addressing follows the realtime-store
// layout: the collection lives at CollectionPath and a single profile at
// ProfilePath(uid).
package rpc

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/userdir --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/userdir userdir/v1/directory.proto
