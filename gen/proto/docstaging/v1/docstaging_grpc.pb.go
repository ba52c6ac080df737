// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: docstaging/v1/docstaging.proto

package docstagingv1

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
	ReviewService_ListStagingRecords_FullMethodName  = "/docstaging.v1.ReviewService/ListStagingRecords"
	ReviewService_GetStagingRecord_FullMethodName    = "/docstaging.v1.ReviewService/GetStagingRecord"
	ReviewService_SubmitReview_FullMethodName        = "/docstaging.v1.ReviewService/SubmitReview"
	ReviewService_GetReviewQueueStats_FullMethodName = "/docstaging.v1.ReviewService/GetReviewQueueStats"
)

// ReviewServiceClient is the client API for ReviewService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ReviewService is the staff-facing surface of the document staging queue.
type ReviewServiceClient interface {
	ListStagingRecords(ctx context.Context, in *ListStagingRecordsRequest, opts ...grpc.CallOption) (*ListStagingRecordsResponse, error)
	GetStagingRecord(ctx context.Context, in *GetStagingRecordRequest, opts ...grpc.CallOption) (*GetStagingRecordResponse, error)
	SubmitReview(ctx context.Context, in *SubmitReviewRequest, opts ...grpc.CallOption) (*SubmitReviewResponse, error)
	GetReviewQueueStats(ctx context.Context, in *GetReviewQueueStatsRequest, opts ...grpc.CallOption) (*GetReviewQueueStatsResponse, error)
}

type reviewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReviewServiceClient(cc grpc.ClientConnInterface) ReviewServiceClient {
	return &reviewServiceClient{cc}
}

func (c *reviewServiceClient) ListStagingRecords(ctx context.Context, in *ListStagingRecordsRequest, opts ...grpc.CallOption) (*ListStagingRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListStagingRecordsResponse)
	err := c.cc.Invoke(ctx, ReviewService_ListStagingRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetStagingRecord(ctx context.Context, in *GetStagingRecordRequest, opts ...grpc.CallOption) (*GetStagingRecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStagingRecordResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetStagingRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) SubmitReview(ctx context.Context, in *SubmitReviewRequest, opts ...grpc.CallOption) (*SubmitReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitReviewResponse)
	err := c.cc.Invoke(ctx, ReviewService_SubmitReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewServiceClient) GetReviewQueueStats(ctx context.Context, in *GetReviewQueueStatsRequest, opts ...grpc.CallOption) (*GetReviewQueueStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReviewQueueStatsResponse)
	err := c.cc.Invoke(ctx, ReviewService_GetReviewQueueStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewServiceServer is the server API for ReviewService service.
// All implementations must embed UnimplementedReviewServiceServer
// for forward compatibility.
//
// ReviewService is the staff-facing surface of the document staging queue.
type ReviewServiceServer interface {
	ListStagingRecords(context.Context, *ListStagingRecordsRequest) (*ListStagingRecordsResponse, error)
	GetStagingRecord(context.Context, *GetStagingRecordRequest) (*GetStagingRecordResponse, error)
	SubmitReview(context.Context, *SubmitReviewRequest) (*SubmitReviewResponse, error)
	GetReviewQueueStats(context.Context, *GetReviewQueueStatsRequest) (*GetReviewQueueStatsResponse, error)
	mustEmbedUnimplementedReviewServiceServer()
}

// UnimplementedReviewServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReviewServiceServer struct{}

func (UnimplementedReviewServiceServer) ListStagingRecords(context.Context, *ListStagingRecordsRequest) (*ListStagingRecordsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListStagingRecords not implemented")
}
func (UnimplementedReviewServiceServer) GetStagingRecord(context.Context, *GetStagingRecordRequest) (*GetStagingRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStagingRecord not implemented")
}
func (UnimplementedReviewServiceServer) SubmitReview(context.Context, *SubmitReviewRequest) (*SubmitReviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitReview not implemented")
}
func (UnimplementedReviewServiceServer) GetReviewQueueStats(context.Context, *GetReviewQueueStatsRequest) (*GetReviewQueueStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReviewQueueStats not implemented")
}
func (UnimplementedReviewServiceServer) mustEmbedUnimplementedReviewServiceServer() {}
func (UnimplementedReviewServiceServer) testEmbeddedByValue()                       {}

// UnsafeReviewServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReviewServiceServer will
// result in compilation errors.
type UnsafeReviewServiceServer interface {
	mustEmbedUnimplementedReviewServiceServer()
}

func RegisterReviewServiceServer(s grpc.ServiceRegistrar, srv ReviewServiceServer) {
	// If the following call pancis, it indicates UnimplementedReviewServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReviewService_ServiceDesc, srv)
}

func _ReviewService_ListStagingRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListStagingRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).ListStagingRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_ListStagingRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).ListStagingRecords(ctx, req.(*ListStagingRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetStagingRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStagingRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetStagingRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetStagingRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetStagingRecord(ctx, req.(*GetStagingRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_SubmitReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).SubmitReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_SubmitReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).SubmitReview(ctx, req.(*SubmitReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewService_GetReviewQueueStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReviewQueueStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewServiceServer).GetReviewQueueStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewService_GetReviewQueueStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewServiceServer).GetReviewQueueStats(ctx, req.(*GetReviewQueueStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReviewService_ServiceDesc is the grpc.ServiceDesc for ReviewService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReviewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "docstaging.v1.ReviewService",
	HandlerType: (*ReviewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListStagingRecords",
			Handler:    _ReviewService_ListStagingRecords_Handler,
		},
		{
			MethodName: "GetStagingRecord",
			Handler:    _ReviewService_GetStagingRecord_Handler,
		},
		{
			MethodName: "SubmitReview",
			Handler:    _ReviewService_SubmitReview_Handler,
		},
		{
			MethodName: "GetReviewQueueStats",
			Handler:    _ReviewService_GetReviewQueueStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docstaging/v1/docstaging.proto",
}

const (
	ExportService_ExportStagingRecords_FullMethodName = "/docstaging.v1.ExportService/ExportStagingRecords"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExportService renders staging queue slices as spreadsheets.
type ExportServiceClient interface {
	ExportStagingRecords(ctx context.Context, in *ExportStagingRecordsRequest, opts ...grpc.CallOption) (*ExportStagingRecordsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportStagingRecords(ctx context.Context, in *ExportStagingRecordsRequest, opts ...grpc.CallOption) (*ExportStagingRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportStagingRecordsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportStagingRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
//
// ExportService renders staging queue slices as spreadsheets.
type ExportServiceServer interface {
	ExportStagingRecords(context.Context, *ExportStagingRecordsRequest) (*ExportStagingRecordsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportStagingRecords(context.Context, *ExportStagingRecordsRequest) (*ExportStagingRecordsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportStagingRecords not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportStagingRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportStagingRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportStagingRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportStagingRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportStagingRecords(ctx, req.(*ExportStagingRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "docstaging.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportStagingRecords",
			Handler:    _ExportService_ExportStagingRecords_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docstaging/v1/docstaging.proto",
}
