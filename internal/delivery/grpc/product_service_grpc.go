package grpc

import (
	"context"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service is declared over well-known types so that no generated code
// is needed: products travel as structpb.Struct with the same field names
// as the JSON API, ids as Int64Value.
const (
	ProductServiceName = "products.v1.ProductService"

	ProductService_ListProducts_FullMethodName  = "/products.v1.ProductService/ListProducts"
	ProductService_GetProduct_FullMethodName    = "/products.v1.ProductService/GetProduct"
	ProductService_CreateProduct_FullMethodName = "/products.v1.ProductService/CreateProduct"
	ProductService_UpdateProduct_FullMethodName = "/products.v1.ProductService/UpdateProduct"
	ProductService_DeleteProduct_FullMethodName = "/products.v1.ProductService/DeleteProduct"
)

type ProductServiceServer interface {
	ListProducts(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetProduct(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	CreateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateProduct(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	DeleteProduct(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)
}

func RegisterProductServiceServer(s gogrpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductService_ServiceDesc, srv)
}

var ProductService_ServiceDesc = gogrpc.ServiceDesc{
	ServiceName: ProductServiceName,
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []gogrpc.MethodDesc{
		{
			MethodName: "ListProducts",
			Handler: unaryMethod(ProductService_ListProducts_FullMethodName, func(s ProductServiceServer, ctx context.Context, in *emptypb.Empty) (interface{}, error) {
				return s.ListProducts(ctx, in)
			}),
		},
		{
			MethodName: "GetProduct",
			Handler: unaryMethod(ProductService_GetProduct_FullMethodName, func(s ProductServiceServer, ctx context.Context, in *wrapperspb.Int64Value) (interface{}, error) {
				return s.GetProduct(ctx, in)
			}),
		},
		{
			MethodName: "CreateProduct",
			Handler: unaryMethod(ProductService_CreateProduct_FullMethodName, func(s ProductServiceServer, ctx context.Context, in *structpb.Struct) (interface{}, error) {
				return s.CreateProduct(ctx, in)
			}),
		},
		{
			MethodName: "UpdateProduct",
			Handler: unaryMethod(ProductService_UpdateProduct_FullMethodName, func(s ProductServiceServer, ctx context.Context, in *structpb.Struct) (interface{}, error) {
				return s.UpdateProduct(ctx, in)
			}),
		},
		{
			MethodName: "DeleteProduct",
			Handler: unaryMethod(ProductService_DeleteProduct_FullMethodName, func(s ProductServiceServer, ctx context.Context, in *wrapperspb.Int64Value) (interface{}, error) {
				return s.DeleteProduct(ctx, in)
			}),
		},
	},
	Streams:  []gogrpc.StreamDesc{},
	Metadata: "products/v1/product_service.proto",
}

// unaryMethod builds the decode/intercept/dispatch shim that protoc-gen-go-grpc
// would otherwise generate for each method.
func unaryMethod[Req any](fullMethod string, call func(ProductServiceServer, context.Context, *Req) (interface{}, error)) func(interface{}, context.Context, func(interface{}) error, gogrpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor gogrpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ProductServiceServer), ctx, req.(*Req))
		}
		if interceptor == nil {
			return handler(ctx, in)
		}
		info := &gogrpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		return interceptor(ctx, in, info, handler)
	}
}

type ProductServiceClient interface {
	ListProducts(ctx context.Context, in *emptypb.Empty, opts ...gogrpc.CallOption) (*structpb.ListValue, error)
	GetProduct(ctx context.Context, in *wrapperspb.Int64Value, opts ...gogrpc.CallOption) (*structpb.Struct, error)
	CreateProduct(ctx context.Context, in *structpb.Struct, opts ...gogrpc.CallOption) (*structpb.Struct, error)
	UpdateProduct(ctx context.Context, in *structpb.Struct, opts ...gogrpc.CallOption) (*emptypb.Empty, error)
	DeleteProduct(ctx context.Context, in *wrapperspb.Int64Value, opts ...gogrpc.CallOption) (*emptypb.Empty, error)
}

type productServiceClient struct {
	cc gogrpc.ClientConnInterface
}

func NewProductServiceClient(cc gogrpc.ClientConnInterface) ProductServiceClient {
	return &productServiceClient{cc}
}

func (c *productServiceClient) ListProducts(ctx context.Context, in *emptypb.Empty, opts ...gogrpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ProductService_ListProducts_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productServiceClient) GetProduct(ctx context.Context, in *wrapperspb.Int64Value, opts ...gogrpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ProductService_GetProduct_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productServiceClient) CreateProduct(ctx context.Context, in *structpb.Struct, opts ...gogrpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ProductService_CreateProduct_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productServiceClient) UpdateProduct(ctx context.Context, in *structpb.Struct, opts ...gogrpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, ProductService_UpdateProduct_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productServiceClient) DeleteProduct(ctx context.Context, in *wrapperspb.Int64Value, opts ...gogrpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, ProductService_DeleteProduct_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
