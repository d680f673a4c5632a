package dto

import (
	"time"

	"gromeuse/internal/entity"
)

type AddressPayload struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,min=10,max=15"`
	Line1   string `json:"line1" validate:"required"`
	Line2   string `json:"line2"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Country string `json:"country" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
}

func (a AddressPayload) ToEntity() entity.Address {
	return entity.Address{
		Name:    a.Name,
		Phone:   a.Phone,
		Line1:   a.Line1,
		Line2:   a.Line2,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		Zip:     a.Zip,
	}
}

type CreateOrderRequest struct {
	ShippingAddress AddressPayload  `json:"shippingAddress" validate:"required"`
	BillingAddress  *AddressPayload `json:"billingAddress"`
	PaymentMethod   string          `json:"paymentMethod" validate:"required"`
}

type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	Subtotal      float64             `json:"subtotal"`
	PaymentMethod string              `json:"paymentMethod"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
}

func OrderResponseFromEntity(order *entity.Order) OrderResponse {
	response := OrderResponse{
		ID:            order.ID.String(),
		Status:        string(order.Status),
		Subtotal:      order.Subtotal,
		PaymentMethod: order.PaymentMethod,
		Items:         make([]OrderItemResponse, 0, len(order.Items)),
		CreatedAt:     order.CreatedAt,
	}
	for _, item := range order.Items {
		response.Items = append(response.Items, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return response
}

func OrderResponsesFromEntities(orders []entity.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, OrderResponseFromEntity(&orders[i]))
	}
	return responses
}
