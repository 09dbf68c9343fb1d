package documents

import (
	"time"

	"github.com/samverms/Kadouri-sub002/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Party is one side of an order: either the seller or the buyer account.
// Address and Contact are optional and omitted from rendered documents
// when empty.
type Party struct {
	Code    string
	Name    string
	Address string
	Contact string
}

// Product describes the traded commodity. Variety and Grade are optional.
type Product struct {
	Code    string
	Name    string
	Variety string
	Grade   string
}

// Agent is the brokering party, shown on both document roles.
type Agent struct {
	Code string
	Name string
}

// Commission carries the broker commission terms. It is part of the order
// record but is not rendered on either confirmation document.
type Commission struct {
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// OrderConfirmation is the input for one confirmation render. It is
// constructed fresh per call from caller-supplied order data and is never
// persisted by this service. The Total is trusted as supplied; the renderer
// does not recompute or validate it against Quantity and UnitPrice.
type OrderConfirmation struct {
	OrderNumber string
	OrderDate   time.Time
	Seller      Party
	Buyer       Party
	Product     Product
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Agent       Agent
	Commission  *Commission
	Notes       string
}

// Party returns the party the given role labels as "(You)"
func (o *OrderConfirmation) Party(role Role) Party {
	if role == RoleSeller {
		return o.Seller
	}
	return o.Buyer
}

// Validate checks that all required fields are present. Amounts are not
// range-checked: whatever the caller supplies is rendered as-is.
func (o *OrderConfirmation) Validate() error {
	if o.OrderNumber == "" {
		return shared.NewDomainError("INVALID_INPUT", "Order number is required")
	}
	if o.OrderDate.IsZero() {
		return shared.NewDomainError("INVALID_INPUT", "Order date is required")
	}
	if o.Seller.Code == "" || o.Seller.Name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Seller code and name are required")
	}
	if o.Buyer.Code == "" || o.Buyer.Name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Buyer code and name are required")
	}
	if o.Product.Code == "" || o.Product.Name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product code and name are required")
	}
	if o.Unit == "" {
		return shared.NewDomainError("INVALID_INPUT", "Quantity unit is required")
	}
	if o.Agent.Code == "" || o.Agent.Name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Agent code and name are required")
	}
	return nil
}
