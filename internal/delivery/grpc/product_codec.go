package grpc

import (
	"fmt"
	"math"

	"product_service/internal/domain"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProductToStruct encodes price as a decimal string so no precision is lost.
func ProductToStruct(p *domain.Product) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"id":          p.ID,
		"sku":         p.SKU,
		"description": p.Description,
		"price":       p.Price.String(),
	})
}

// StructToProduct accepts price as a number or a decimal string. Absent
// fields decode to their zero values.
func StructToProduct(s *structpb.Struct) (*domain.Product, error) {
	fields := s.GetFields()
	product := &domain.Product{
		SKU:         fields["sku"].GetStringValue(),
		Description: fields["description"].GetStringValue(),
	}

	if v, ok := fields["id"]; ok {
		number, isNumber := v.GetKind().(*structpb.Value_NumberValue)
		if !isNumber {
			return nil, fmt.Errorf("id must be a number")
		}
		id := number.NumberValue
		if id != math.Trunc(id) {
			return nil, fmt.Errorf("id must be an integer, got %v", id)
		}
		if id < math.MinInt || id >= math.MaxInt {
			return nil, fmt.Errorf("id %v is out of range", id)
		}
		product.ID = int(id)
	}

	if v, ok := fields["price"]; ok {
		switch kind := v.GetKind().(type) {
		case *structpb.Value_NumberValue:
			product.Price = decimal.NewFromFloat(kind.NumberValue)
		case *structpb.Value_StringValue:
			price, err := decimal.NewFromString(kind.StringValue)
			if err != nil {
				return nil, fmt.Errorf("price %q is not a decimal: %w", kind.StringValue, err)
			}
			product.Price = price
		case *structpb.Value_NullValue:
		default:
			return nil, fmt.Errorf("price must be a number or a string")
		}
	}
	return product, nil
}
