package export

import (
	"fmt"

	"github.com/de-tools/order-reports/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// StatusCounts partitions orders into the three breakdown buckets.
type StatusCounts struct {
	Pending   int
	Completed int
	Cancelled int
}

func (c StatusCounts) Total() int {
	return c.Pending + c.Completed + c.Cancelled
}

func Breakdown(orders []domain.Order) StatusCounts {
	var counts StatusCounts
	for _, o := range orders {
		switch o.Status.Bucket() {
		case domain.OrderStatusCompleted:
			counts.Completed++
		case domain.OrderStatusCancelled:
			counts.Cancelled++
		default:
			counts.Pending++
		}
	}
	return counts
}

// Revenue sums the total amount of every order in the list.
func Revenue(orders []domain.Order) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, o := range orders {
		amount, err := parseAmount(o)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(amount)
	}
	return sum, nil
}

func parseAmount(o domain.Order) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(o.TotalAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("order %s: invalid total amount %q: %w", o.ID, o.TotalAmount, err)
	}
	return amount, nil
}
