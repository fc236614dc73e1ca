package grpc

import (
	"context"
	"errors"
	"strings"

	"product_service/internal/domain"
	"product_service/internal/usecase"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ProductHandler struct {
	productUseCase usecase.ProductUseCase
	log            *logrus.Logger
}

func NewProductHandler(puc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: puc,
		log:            logger,
	}
}

func (h *ProductHandler) ListProducts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	h.log.Debug("gRPC Handler: Received ListProducts request")

	products, err := h.productUseCase.ListProducts()
	if err != nil {
		h.log.Errorf("gRPC Handler: ListProducts use case error: %v", err)
		return nil, status.Errorf(codes.Internal, "An error occurred while retrieving products: %v", err)
	}

	resp := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(products))}
	for i := range products {
		s, err := ProductToStruct(&products[i])
		if err != nil {
			return nil, status.Errorf(codes.Internal, "could not encode product %d: %v", products[i].ID, err)
		}
		resp.Values = append(resp.Values, structpb.NewStructValue(s))
	}
	return resp, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id := int(req.GetValue())
	h.log.Debugf("gRPC Handler: Received GetProduct request: ID=%d", id)

	product, err := h.productUseCase.GetProductByID(id)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(err, "retrieving the product")
	}
	return encodeProduct(product)
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	product, err := decodeProduct(req)
	if err != nil {
		return nil, err
	}
	h.log.Infof("gRPC Handler: Received CreateProduct request: SKU=%s", product.SKU)

	created, err := h.productUseCase.CreateProduct(product)
	if err != nil {
		h.log.Warnf("gRPC Handler: CreateProduct use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err, "creating the product")
	}

	h.log.Infof("gRPC Handler: Product created successfully: ID=%d", created.ID)
	return encodeProduct(created)
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	product, err := decodeProduct(req)
	if err != nil {
		return nil, err
	}
	h.log.Infof("gRPC Handler: Received UpdateProduct request: ID=%d", product.ID)

	if err := h.productUseCase.UpdateProduct(product); err != nil {
		h.log.Warnf("gRPC Handler: UpdateProduct use case error for ID %d: %v", product.ID, err)
		return nil, mapDomainErrorToGrpcStatus(err, "updating the product")
	}
	return &emptypb.Empty{}, nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	id := int(req.GetValue())
	h.log.Infof("gRPC Handler: Received DeleteProduct request: ID=%d", id)

	product, err := h.productUseCase.GetProductByID(id)
	if err == nil {
		err = h.productUseCase.DeleteProduct(product)
	}
	if err != nil {
		h.log.Warnf("gRPC Handler: DeleteProduct use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err, "deleting the product")
	}
	return &emptypb.Empty{}, nil
}

// decodeProduct mirrors the HTTP pre-checks before the use case re-validates.
func decodeProduct(req *structpb.Struct) (*domain.Product, error) {
	if req == nil || len(req.GetFields()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "Product data is required.")
	}
	product, err := StructToProduct(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "Invalid product: %v", err)
	}
	if strings.TrimSpace(product.SKU) == "" {
		return nil, status.Error(codes.InvalidArgument, "SKU is required.")
	}
	if !product.Price.IsPositive() {
		return nil, status.Error(codes.InvalidArgument, "Price must be greater than 0.")
	}
	return product, nil
}

func encodeProduct(product *domain.Product) (*structpb.Struct, error) {
	s, err := ProductToStruct(product)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "could not encode product %d: %v", product.ID, err)
	}
	return s, nil
}

func mapDomainErrorToGrpcStatus(err error, action string) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidProduct):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Errorf(codes.Internal, "An error occurred while %s: %v", action, err)
	}
}
