package dto

import (
	"encoding/json"
	"time"

	"github.com/samverms/Kadouri-sub002/internal/domain/documents"
	"github.com/samverms/Kadouri-sub002/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PartyRequest is one side of the order in the request body
type PartyRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// ProductRequest describes the traded commodity
type ProductRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Variety string `json:"variety"`
	Grade   string `json:"grade"`
}

// AgentRequest is the brokering party
type AgentRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// CommissionRequest carries optional broker commission terms
type CommissionRequest struct {
	Rate   json.Number `json:"rate" binding:"required"`
	Amount json.Number `json:"amount" binding:"required"`
}

// OrderConfirmationRequest is the request body for confirmation documents.
// Amounts arrive as JSON numbers and are parsed into decimals without a
// float round trip.
type OrderConfirmationRequest struct {
	OrderNo    string             `json:"orderNo" binding:"required"`
	Date       string             `json:"date" binding:"required"`
	Seller     PartyRequest       `json:"seller" binding:"required"`
	Buyer      PartyRequest       `json:"buyer" binding:"required"`
	Product    ProductRequest     `json:"product" binding:"required"`
	Quantity   json.Number        `json:"quantity" binding:"required"`
	Unit       string             `json:"unit" binding:"required"`
	Price      json.Number        `json:"price" binding:"required"`
	Total      json.Number        `json:"total" binding:"required"`
	Agent      AgentRequest       `json:"agent" binding:"required"`
	Commission *CommissionRequest `json:"commission"`
	Notes      string             `json:"notes"`
}

// dateLayouts are the accepted order date formats
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ToDomain converts the request into the domain aggregate, parsing the
// date and amounts
func (r *OrderConfirmationRequest) ToDomain() (*documents.OrderConfirmation, error) {
	orderDate, err := parseOrderDate(r.Date)
	if err != nil {
		return nil, err
	}

	quantity, err := parseAmount("quantity", r.Quantity)
	if err != nil {
		return nil, err
	}
	price, err := parseAmount("price", r.Price)
	if err != nil {
		return nil, err
	}
	total, err := parseAmount("total", r.Total)
	if err != nil {
		return nil, err
	}

	order := &documents.OrderConfirmation{
		OrderNumber: r.OrderNo,
		OrderDate:   orderDate,
		Seller: documents.Party{
			Code:    r.Seller.Code,
			Name:    r.Seller.Name,
			Address: r.Seller.Address,
			Contact: r.Seller.Contact,
		},
		Buyer: documents.Party{
			Code:    r.Buyer.Code,
			Name:    r.Buyer.Name,
			Address: r.Buyer.Address,
			Contact: r.Buyer.Contact,
		},
		Product: documents.Product{
			Code:    r.Product.Code,
			Name:    r.Product.Name,
			Variety: r.Product.Variety,
			Grade:   r.Product.Grade,
		},
		Quantity:  quantity,
		Unit:      r.Unit,
		UnitPrice: price,
		Total:     total,
		Agent: documents.Agent{
			Code: r.Agent.Code,
			Name: r.Agent.Name,
		},
		Notes: r.Notes,
	}

	if r.Commission != nil {
		rate, err := parseAmount("commission.rate", r.Commission.Rate)
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount("commission.amount", r.Commission.Amount)
		if err != nil {
			return nil, err
		}
		order.Commission = &documents.Commission{
			Rate:   rate,
			Amount: amount,
		}
	}

	return order, nil
}

func parseOrderDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, shared.NewDomainError("INVALID_INPUT", "Invalid order date: "+value)
}

func parseAmount(field string, value json.Number) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value.String())
	if err != nil {
		return decimal.Decimal{}, shared.NewDomainError("INVALID_INPUT", "Invalid "+field+": "+value.String())
	}
	return d, nil
}

// ConfirmationLinkResponse is the response for the link endpoint.
// ExpiresIn is the URL lifetime in seconds for stored documents, and 0 for
// inline data URLs, which do not expire.
type ConfirmationLinkResponse struct {
	Reference string `json:"reference"`
	ExpiresIn int64  `json:"expires_in"`
}
