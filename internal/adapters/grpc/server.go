package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dukahub/pos-terminal-service/internal/application"
)

// TerminalInternalService is the internal surface other services call to
// validate terminal sessions and inspect device trust state.
type TerminalInternalService interface {
	ValidateSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDeviceStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type TerminalInternalServer struct {
	service *application.Service
}

func NewTerminalInternalServer(service *application.Service) *TerminalInternalServer {
	return &TerminalInternalServer{service: service}
}

func Register(server grpc.ServiceRegistrar, svc TerminalInternalService) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: "dukahub.pos.v1.TerminalInternalService",
		HandlerType: (*TerminalInternalService)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "ValidateSession",
				Handler:    validateSessionHandler(svc),
			},
			{
				MethodName: "GetDeviceStatus",
				Handler:    getDeviceStatusHandler(svc),
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "proto/pos/v1/terminal_internal.proto",
	}, svc)
}

func (s *TerminalInternalServer) ValidateSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tokenVal := req.GetFields()["token"]
	if tokenVal == nil {
		return nil, status.Error(codes.InvalidArgument, "missing token")
	}
	token := tokenVal.GetStringValue()
	if token == "" {
		return nil, status.Error(codes.InvalidArgument, "missing token")
	}

	claims, err := s.service.ValidateSession(ctx, token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid session")
	}

	resp, err := structpb.NewStruct(map[string]any{
		"valid":       true,
		"account_id":  claims.AccountID.String(),
		"role":        claims.Role,
		"device_uuid": claims.DeviceID.String(),
		"business_id": claims.BusinessID.String(),
		"expires_at":  claims.ExpiresAt.Unix(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	return resp, nil
}

func (s *TerminalInternalServer) GetDeviceStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	deviceVal := req.GetFields()["device_uuid"]
	if deviceVal == nil || deviceVal.GetStringValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing device_uuid")
	}

	res, err := s.service.DeviceStatus(ctx, deviceVal.GetStringValue())
	if err != nil {
		return nil, status.Error(codes.NotFound, "device not registered")
	}

	resp, err := structpb.NewStruct(map[string]any{
		"device_uuid":        res.DeviceUUID.String(),
		"business_id":        res.BusinessID.String(),
		"branch_id":          res.BranchID.String(),
		"label":              res.Label,
		"attempts":           res.Attempts,
		"remaining_attempts": res.RemainingAttempts,
		"is_disabled":        res.IsDisabled,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	return resp, nil
}

func validateSessionHandler(svc TerminalInternalService) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := &structpb.Struct{}
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return svc.ValidateSession(ctx, req)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/dukahub.pos.v1.TerminalInternalService/ValidateSession",
		}
		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*structpb.Struct)
			if !ok {
				return nil, status.Error(codes.InvalidArgument, "invalid request type")
			}
			return svc.ValidateSession(ctx, typed)
		}
		return interceptor(ctx, req, info, handler)
	}
}

func getDeviceStatusHandler(svc TerminalInternalService) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := &structpb.Struct{}
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return svc.GetDeviceStatus(ctx, req)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/dukahub.pos.v1.TerminalInternalService/GetDeviceStatus",
		}
		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*structpb.Struct)
			if !ok {
				return nil, status.Error(codes.InvalidArgument, "invalid request type")
			}
			return svc.GetDeviceStatus(ctx, typed)
		}
		return interceptor(ctx, req, info, handler)
	}
}
