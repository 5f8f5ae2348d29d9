package adapters

import (
	"github.com/de-tools/order-reports/pkg/models/api"
	"github.com/de-tools/order-reports/pkg/models/domain"
)

func MapCustomerApiToDomain(c api.Customer) domain.Customer {
	return domain.Customer{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

func MapLineItemApiToDomain(li api.LineItem) domain.LineItem {
	return domain.LineItem{
		Name:     li.Name,
		Price:    li.Price,
		Quantity: li.Quantity,
		Size:     li.Size,
	}
}

func MapOrderExportApiToDomain(o api.OrderExport) domain.OrderExportRecord {
	items := make([]domain.LineItem, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, MapLineItemApiToDomain(li))
	}

	return domain.OrderExportRecord{
		ID:             o.ID,
		Customer:       MapCustomerApiToDomain(o.Customer),
		Items:          items,
		Subtotal:       o.Subtotal,
		Discount:       o.Discount,
		Shipping:       o.Shipping,
		Total:          o.Total,
		Status:         domain.OrderStatus(o.Status),
		PaymentMethod:  o.PaymentMethod,
		PaymentStatus:  o.PaymentStatus,
		ShippingStatus: o.ShippingStatus,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func MapOrderApiToDomain(o api.Order) domain.Order {
	return domain.Order{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Email:        o.Email,
		TotalAmount:  o.TotalAmount,
		Discount:     o.Discount,
		Status:       domain.OrderStatus(o.Status),
		ItemCount:    o.ItemCount,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func MapOrderListApiToDomain(l api.OrderList) domain.OrderList {
	orders := make([]domain.Order, 0, len(l.Orders))
	for _, o := range l.Orders {
		orders = append(orders, MapOrderApiToDomain(o))
	}
	return domain.OrderList{Orders: orders}
}
