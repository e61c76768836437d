//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"sweets-delivery/internal/entities"
)

type Repository interface {
	CreateBatch(ctx context.Context, orders []entities.Order) error
}
