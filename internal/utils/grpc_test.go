package utils

import (
	"testing"

	"github.com/MKhiriev/go-keyplace/models"
	"google.golang.org/grpc/encoding"
)

func TestJSONCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(JSONCodecName)
	if c == nil {
		t.Fatal("expected json codec to be registered")
	}
	if c.Name() != "json" {
		t.Errorf("expected name json, got %s", c.Name())
	}
}

func TestJSONCodec_RoundTrip(t *testing.T) {
	var c JSONCodec
	in := models.AuthQuery{Label: "primary"}
	in.UserAuthKey.Auth[0] = 9

	b, err := c.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var out models.AuthQuery
	if err = c.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}

func TestGRPCMethodNames(t *testing.T) {
	if GRPCMethodRecover != "/keyplace.custodian.v1.Custodian/Recover" {
		t.Errorf("unexpected method name %s", GRPCMethodRecover)
	}
}
