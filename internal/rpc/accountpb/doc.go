// Package accountpb holds the wire types and service descriptor for the
// account.v1.AccountService RPC surface.
//
// The message structs use the legacy protobuf struct-tag form (field tags
// plus Reset/String/ProtoMessage methods) rather than protoc-generated code,
// and are kept in sync with account.proto by hand. grpc-go's proto codec
// accepts such messages via protoadapt, deriving descriptors from the struct
// tags at runtime, so the wire format is identical to what generated code
// would produce. The build carries no protoc step because of this.
//
// When editing: change account.proto first, then mirror the change here.
// Field numbers are wire contract — never reuse or renumber.
package accountpb
