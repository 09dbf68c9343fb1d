package documents

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() *OrderConfirmation {
	return &OrderConfirmation{
		OrderNumber: "ORD-1001",
		OrderDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Seller:      Party{Code: "S1", Name: "Acme"},
		Buyer:       Party{Code: "B1", Name: "Beta Co"},
		Product:     Product{Code: "P1", Name: "Almonds", Variety: "Nonpareil"},
		Quantity:    decimal.NewFromInt(1000),
		Unit:        "lbs",
		UnitPrice:   decimal.NewFromFloat(4.50),
		Total:       decimal.NewFromInt(4500),
		Agent:       Agent{Code: "A1", Name: "Dana"},
	}
}

func TestOrderConfirmation_Validate(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		require.NoError(t, validOrder().Validate())
	})

	t.Run("missing order number", func(t *testing.T) {
		o := validOrder()
		o.OrderNumber = ""
		require.Error(t, o.Validate())
	})

	t.Run("missing order date", func(t *testing.T) {
		o := validOrder()
		o.OrderDate = time.Time{}
		require.Error(t, o.Validate())
	})

	t.Run("missing seller name", func(t *testing.T) {
		o := validOrder()
		o.Seller.Name = ""
		require.Error(t, o.Validate())
	})

	t.Run("missing buyer code", func(t *testing.T) {
		o := validOrder()
		o.Buyer.Code = ""
		require.Error(t, o.Validate())
	})

	t.Run("missing product name", func(t *testing.T) {
		o := validOrder()
		o.Product.Name = ""
		require.Error(t, o.Validate())
	})

	t.Run("missing unit", func(t *testing.T) {
		o := validOrder()
		o.Unit = ""
		require.Error(t, o.Validate())
	})

	t.Run("missing agent", func(t *testing.T) {
		o := validOrder()
		o.Agent = Agent{}
		require.Error(t, o.Validate())
	})

	t.Run("inconsistent total is accepted", func(t *testing.T) {
		// The renderer trusts the supplied total and never recomputes it.
		o := validOrder()
		o.Total = decimal.NewFromInt(99)
		require.NoError(t, o.Validate())
	})

	t.Run("negative amounts are accepted", func(t *testing.T) {
		o := validOrder()
		o.Quantity = decimal.NewFromInt(-5)
		o.UnitPrice = decimal.NewFromFloat(-1.25)
		require.NoError(t, o.Validate())
	})
}

func TestOrderConfirmation_Party(t *testing.T) {
	o := validOrder()
	assert.Equal(t, o.Seller, o.Party(RoleSeller))
	assert.Equal(t, o.Buyer, o.Party(RoleBuyer))
}
