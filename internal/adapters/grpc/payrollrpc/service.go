// Package payrollrpc は payroll.v1.PayrollService の gRPC サービス定義です。
// メッセージには google.protobuf.Struct を使用します。
package payrollrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName は gRPC のサービス名です。
	ServiceName = "payroll.v1.PayrollService"

	RunPayrollFullMethodName       = "/" + ServiceName + "/RunPayroll"
	CalculatePayrollFullMethodName = "/" + ServiceName + "/CalculatePayroll"
)

// PayrollServiceServer は PayrollService のサーバー側インターフェースです。
type PayrollServiceServer interface {
	RunPayroll(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CalculatePayroll(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterPayrollServiceServer は srv を s に登録します。
func RegisterPayrollServiceServer(s grpc.ServiceRegistrar, srv PayrollServiceServer) {
	s.RegisterService(&PayrollServiceDesc, srv)
}

func runPayrollHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayrollServiceServer).RunPayroll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RunPayrollFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PayrollServiceServer).RunPayroll(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func calculatePayrollHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayrollServiceServer).CalculatePayroll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CalculatePayrollFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PayrollServiceServer).CalculatePayroll(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// PayrollServiceDesc は PayrollService の grpc.ServiceDesc です。
var PayrollServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PayrollServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RunPayroll", Handler: runPayrollHandler},
		{MethodName: "CalculatePayroll", Handler: calculatePayrollHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "payroll/v1/payroll.proto",
}

// PayrollServiceClient は PayrollService のクライアントです。
type PayrollServiceClient interface {
	RunPayroll(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CalculatePayroll(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type payrollServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPayrollServiceClient は PayrollServiceClient を生成します。
func NewPayrollServiceClient(cc grpc.ClientConnInterface) PayrollServiceClient {
	return &payrollServiceClient{cc: cc}
}

func (c *payrollServiceClient) RunPayroll(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RunPayrollFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *payrollServiceClient) CalculatePayroll(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CalculatePayrollFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
