package utils

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// JSONCodecName is the content subtype of the custodian gRPC service.
// Requests travel as "application/grpc+json" so both transports share the
// models package as their only schema.
const JSONCodecName = "json"

// Fully qualified gRPC names of the custodian service.
const (
	GRPCServiceName = "keyplace.custodian.v1.Custodian"

	GRPCMethodRegister     = "/" + GRPCServiceName + "/Register"
	GRPCMethodAuthenticate = "/" + GRPCServiceName + "/Authenticate"
	GRPCMethodSetKeys      = "/" + GRPCServiceName + "/SetKeys"
	GRPCMethodRecover      = "/" + GRPCServiceName + "/Recover"
)

// GRPCSessionMetadataKey carries the bearer session on authenticated
// gRPC calls.
const GRPCSessionMetadataKey = "authorization"

func init() {
	encoding.RegisterCodec(JSONCodec{})
}

// JSONCodec implements grpc's encoding.Codec with encoding/json.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) Name() string {
	return JSONCodecName
}
