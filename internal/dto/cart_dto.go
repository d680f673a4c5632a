package dto

import "gromeuse/internal/service"

type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=10"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=10"`
}

type CartLineResponse struct {
	ItemID    string  `json:"itemId"`
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

type CartResponse struct {
	Lines    []CartLineResponse `json:"lines"`
	Subtotal float64            `json:"subtotal"`
}

func CartResponseFromView(view *service.CartView) CartResponse {
	response := CartResponse{
		Lines:    make([]CartLineResponse, 0, len(view.Lines)),
		Subtotal: view.Subtotal,
	}
	for _, line := range view.Lines {
		response.Lines = append(response.Lines, CartLineResponse{
			ItemID:    line.Item.ID.String(),
			ProductID: line.Item.ProductID.String(),
			Title:     line.Item.Product.Title,
			UnitPrice: line.Item.Product.Price,
			Quantity:  line.Item.Quantity,
			LineTotal: line.LineTotal,
		})
	}
	return response
}
