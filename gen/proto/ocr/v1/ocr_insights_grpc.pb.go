// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: ocr/v1/ocr_insights.proto

package ocrv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	OcrInsightsService_GetOcrInsights_FullMethodName = "/ocr.v1.OcrInsightsService/GetOcrInsights"
	OcrInsightsService_ListResults_FullMethodName    = "/ocr.v1.OcrInsightsService/ListResults"
	OcrInsightsService_IngestResults_FullMethodName  = "/ocr.v1.OcrInsightsService/IngestResults"
)

// OcrInsightsServiceClient is the client API for OcrInsightsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type OcrInsightsServiceClient interface {
	// GetOcrInsights reconciles the current snapshot of an application's
	// extracted fields and returns the full insights payload.
	GetOcrInsights(ctx context.Context, in *GetOcrInsightsRequest, opts ...grpc.CallOption) (*GetOcrInsightsResponse, error)
	// ListResults returns the raw extracted records for an application.
	ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpc.CallOption) (*ListResultsResponse, error)
	// IngestResults appends one provider result batch. Re-extractions create
	// new versions; nothing is overwritten.
	IngestResults(ctx context.Context, in *IngestResultsRequest, opts ...grpc.CallOption) (*IngestResultsResponse, error)
}

type ocrInsightsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOcrInsightsServiceClient(cc grpc.ClientConnInterface) OcrInsightsServiceClient {
	return &ocrInsightsServiceClient{cc}
}

func (c *ocrInsightsServiceClient) GetOcrInsights(ctx context.Context, in *GetOcrInsightsRequest, opts ...grpc.CallOption) (*GetOcrInsightsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetOcrInsightsResponse)
	err := c.cc.Invoke(ctx, OcrInsightsService_GetOcrInsights_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ocrInsightsServiceClient) ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpc.CallOption) (*ListResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListResultsResponse)
	err := c.cc.Invoke(ctx, OcrInsightsService_ListResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ocrInsightsServiceClient) IngestResults(ctx context.Context, in *IngestResultsRequest, opts ...grpc.CallOption) (*IngestResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestResultsResponse)
	err := c.cc.Invoke(ctx, OcrInsightsService_IngestResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OcrInsightsServiceServer is the server API for OcrInsightsService service.
// All implementations must embed UnimplementedOcrInsightsServiceServer
// for forward compatibility.
type OcrInsightsServiceServer interface {
	// GetOcrInsights reconciles the current snapshot of an application's
	// extracted fields and returns the full insights payload.
	GetOcrInsights(context.Context, *GetOcrInsightsRequest) (*GetOcrInsightsResponse, error)
	// ListResults returns the raw extracted records for an application.
	ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error)
	// IngestResults appends one provider result batch. Re-extractions create
	// new versions; nothing is overwritten.
	IngestResults(context.Context, *IngestResultsRequest) (*IngestResultsResponse, error)
	mustEmbedUnimplementedOcrInsightsServiceServer()
}

// UnimplementedOcrInsightsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedOcrInsightsServiceServer struct{}

func (UnimplementedOcrInsightsServiceServer) GetOcrInsights(context.Context, *GetOcrInsightsRequest) (*GetOcrInsightsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetOcrInsights not implemented")
}
func (UnimplementedOcrInsightsServiceServer) ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListResults not implemented")
}
func (UnimplementedOcrInsightsServiceServer) IngestResults(context.Context, *IngestResultsRequest) (*IngestResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestResults not implemented")
}
func (UnimplementedOcrInsightsServiceServer) mustEmbedUnimplementedOcrInsightsServiceServer() {}
func (UnimplementedOcrInsightsServiceServer) testEmbeddedByValue()                            {}

// UnsafeOcrInsightsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to OcrInsightsServiceServer will
// result in compilation errors.
type UnsafeOcrInsightsServiceServer interface {
	mustEmbedUnimplementedOcrInsightsServiceServer()
}

func RegisterOcrInsightsServiceServer(s grpc.ServiceRegistrar, srv OcrInsightsServiceServer) {
	// If the following call pancis, it indicates UnimplementedOcrInsightsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&OcrInsightsService_ServiceDesc, srv)
}

func _OcrInsightsService_GetOcrInsights_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetOcrInsightsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcrInsightsServiceServer).GetOcrInsights(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcrInsightsService_GetOcrInsights_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcrInsightsServiceServer).GetOcrInsights(ctx, req.(*GetOcrInsightsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OcrInsightsService_ListResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcrInsightsServiceServer).ListResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcrInsightsService_ListResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcrInsightsServiceServer).ListResults(ctx, req.(*ListResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OcrInsightsService_IngestResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcrInsightsServiceServer).IngestResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcrInsightsService_IngestResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcrInsightsServiceServer).IngestResults(ctx, req.(*IngestResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// OcrInsightsService_ServiceDesc is the grpc.ServiceDesc for OcrInsightsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var OcrInsightsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ocr.v1.OcrInsightsService",
	HandlerType: (*OcrInsightsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetOcrInsights",
			Handler:    _OcrInsightsService_GetOcrInsights_Handler,
		},
		{
			MethodName: "ListResults",
			Handler:    _OcrInsightsService_ListResults_Handler,
		},
		{
			MethodName: "IngestResults",
			Handler:    _OcrInsightsService_IngestResults_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ocr/v1/ocr_insights.proto",
}
