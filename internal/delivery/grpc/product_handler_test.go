package grpc

import (
	"context"
	"io"
	"net"
	"testing"

	"product_service/internal/repository"
	"product_service/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func startTestServer(t *testing.T) *gogrpc.ClientConn {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	uc := usecase.NewProductUseCase(repository.NewMemoryProductRepository(logger), nil, logger)
	server, _ := NewServer(uc, logger)

	lis := bufconn.Listen(1024 * 1024)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := gogrpc.NewClient("passthrough:///bufnet",
		gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func mustStruct(t *testing.T, fields map[string]interface{}) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

func TestProductServiceLifecycle(t *testing.T) {
	client := NewProductServiceClient(startTestServer(t))
	ctx := context.Background()

	created, err := client.CreateProduct(ctx, mustStruct(t, map[string]interface{}{"sku": "PROD-001", "price": 10}))
	require.NoError(t, err)
	product, err := StructToProduct(created)
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)

	_, err = client.CreateProduct(ctx, mustStruct(t, map[string]interface{}{"sku": "PROD-002", "price": "20.25"}))
	require.NoError(t, err)

	_, err = client.UpdateProduct(ctx, mustStruct(t, map[string]interface{}{"id": 1, "sku": "PROD-001-UPDATED", "description": "Updated", "price": "11.50"}))
	require.NoError(t, err)

	got, err := client.GetProduct(ctx, wrapperspb.Int64(1))
	require.NoError(t, err)
	product, err = StructToProduct(got)
	require.NoError(t, err)
	assert.Equal(t, "PROD-001-UPDATED", product.SKU)
	assert.Equal(t, "Updated", product.Description)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("11.50")))

	_, err = client.DeleteProduct(ctx, wrapperspb.Int64(1))
	require.NoError(t, err)

	list, err := client.ListProducts(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, list.GetValues(), 1)
	remaining, err := StructToProduct(list.GetValues()[0].GetStructValue())
	require.NoError(t, err)
	assert.Equal(t, 2, remaining.ID)
}

func TestProductServiceErrorCodes(t *testing.T) {
	client := NewProductServiceClient(startTestServer(t))
	ctx := context.Background()

	_, err := client.GetProduct(ctx, wrapperspb.Int64(999))
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "Product with ID 999 not found.", status.Convert(err).Message())

	_, err = client.DeleteProduct(ctx, wrapperspb.Int64(999))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.UpdateProduct(ctx, mustStruct(t, map[string]interface{}{"id": 999, "sku": "A", "price": 1}))
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "Product with ID 999 not found.", status.Convert(err).Message())

	badIDs := []map[string]interface{}{
		{"id": "1", "sku": "B", "price": 2},
		{"id": 1e300, "sku": "B", "price": 2},
		{"id": -1e300, "sku": "B", "price": 2},
	}
	for _, fields := range badIDs {
		_, err := client.UpdateProduct(ctx, mustStruct(t, fields))
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "fields %v", fields)
	}

	invalid := []map[string]interface{}{
		{},
		{"price": 10},
		{"sku": "   ", "price": 10},
		{"sku": "PROD-001"},
		{"sku": "PROD-001", "price": 0},
		{"sku": "PROD-001", "price": -99.99},
		{"sku": "PROD-001", "price": "not-a-number"},
	}
	for _, fields := range invalid {
		_, err := client.CreateProduct(ctx, mustStruct(t, fields))
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "fields %v", fields)
	}

	_, err = client.CreateProduct(ctx, mustStruct(t, map[string]interface{}{"sku": "  ", "price": 10}))
	assert.Equal(t, "SKU is required.", status.Convert(err).Message())
}

func TestHealthServing(t *testing.T) {
	client := healthpb.NewHealthClient(startTestServer(t))

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ProductServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestStructToProductRejectsFractionalID(t *testing.T) {
	_, err := StructToProduct(&structpb.Struct{Fields: map[string]*structpb.Value{
		"id": structpb.NewNumberValue(1.5),
	}})
	assert.Error(t, err)
}
