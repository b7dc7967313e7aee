// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-keyplace/internal/utils"
	"github.com/MKhiriev/go-keyplace/models"
	"google.golang.org/grpc"
)

// CustodianServer is the server API of keyplace.custodian.v1.Custodian.
// Messages are the models types carried by the "json" codec, so there is
// no generated code; the service descriptor below is written by hand.
type CustodianServer interface {
	Register(context.Context, *models.RegisterRequest) (*models.Session, error)
	Authenticate(context.Context, *models.AuthRequest) (*models.AuthResponse, error)
	SetKeys(context.Context, *models.SetKeysRequest) (*models.Empty, error)
	Recover(context.Context, *models.RecoverRequest) (*models.AuthMatch, error)
}

// RegisterCustodianServer registers srv on s.
func RegisterCustodianServer(s grpc.ServiceRegistrar, srv CustodianServer) {
	s.RegisterService(&custodianServiceDesc, srv)
}

var custodianServiceDesc = grpc.ServiceDesc{
	ServiceName: utils.GRPCServiceName,
	HandlerType: (*CustodianServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler: unaryHandler(utils.GRPCMethodRegister, func(srv CustodianServer, ctx context.Context, req *models.RegisterRequest) (any, error) {
				return srv.Register(ctx, req)
			}),
		},
		{
			MethodName: "Authenticate",
			Handler: unaryHandler(utils.GRPCMethodAuthenticate, func(srv CustodianServer, ctx context.Context, req *models.AuthRequest) (any, error) {
				return srv.Authenticate(ctx, req)
			}),
		},
		{
			MethodName: "SetKeys",
			Handler: unaryHandler(utils.GRPCMethodSetKeys, func(srv CustodianServer, ctx context.Context, req *models.SetKeysRequest) (any, error) {
				return srv.SetKeys(ctx, req)
			}),
		},
		{
			MethodName: "Recover",
			Handler: unaryHandler(utils.GRPCMethodRecover, func(srv CustodianServer, ctx context.Context, req *models.RecoverRequest) (any, error) {
				return srv.Recover(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "keyplace/custodian/v1/custodian.proto",
}

// unaryHandler builds the decode-then-intercept boilerplate protoc would
// otherwise generate for each method.
func unaryHandler[Req any](fullMethod string, call func(CustodianServer, context.Context, *Req) (any, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		custodian := srv.(CustodianServer)
		if interceptor == nil {
			return call(custodian, ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(custodian, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
