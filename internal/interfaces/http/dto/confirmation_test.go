package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *OrderConfirmationRequest {
	return &OrderConfirmationRequest{
		OrderNo:  "ORD-1001",
		Date:     "2025-03-01",
		Seller:   PartyRequest{Code: "S1", Name: "Acme", Address: "525 Northern Blvd"},
		Buyer:    PartyRequest{Code: "B1", Name: "Beta Co", Contact: "ops@betaco.example"},
		Product:  ProductRequest{Code: "P1", Name: "Almonds", Variety: "Nonpareil"},
		Quantity: json.Number("1000"),
		Unit:     "lbs",
		Price:    json.Number("4.5"),
		Total:    json.Number("4500"),
		Agent:    AgentRequest{Code: "A1", Name: "Dana"},
	}
}

func TestOrderConfirmationRequest_ToDomain(t *testing.T) {
	t.Run("maps all fields", func(t *testing.T) {
		order, err := validRequest().ToDomain()
		require.NoError(t, err)

		assert.Equal(t, "ORD-1001", order.OrderNumber)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), order.OrderDate)
		assert.Equal(t, "Acme", order.Seller.Name)
		assert.Equal(t, "525 Northern Blvd", order.Seller.Address)
		assert.Equal(t, "ops@betaco.example", order.Buyer.Contact)
		assert.Equal(t, "Nonpareil", order.Product.Variety)
		assert.Equal(t, "1000", order.Quantity.String())
		assert.Equal(t, "4.5", order.UnitPrice.String())
		assert.Equal(t, "4500", order.Total.String())
		assert.Equal(t, "Dana", order.Agent.Name)
		assert.Nil(t, order.Commission)
	})

	t.Run("accepts RFC3339 dates", func(t *testing.T) {
		req := validRequest()
		req.Date = "2025-03-01T10:30:00Z"

		order, err := req.ToDomain()
		require.NoError(t, err)
		assert.Equal(t, 2025, order.OrderDate.Year())
	})

	t.Run("rejects unparseable dates", func(t *testing.T) {
		req := validRequest()
		req.Date = "03/01/2025"

		_, err := req.ToDomain()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid order date")
	})

	t.Run("rejects non-numeric amounts", func(t *testing.T) {
		req := validRequest()
		req.Price = json.Number("four fifty")

		_, err := req.ToDomain()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid price")
	})

	t.Run("amounts keep their exact decimal value", func(t *testing.T) {
		req := validRequest()
		req.Price = json.Number("0.1")

		order, err := req.ToDomain()
		require.NoError(t, err)
		assert.Equal(t, "0.1", order.UnitPrice.String())
	})

	t.Run("maps optional commission", func(t *testing.T) {
		req := validRequest()
		req.Commission = &CommissionRequest{
			Rate:   json.Number("0.005"),
			Amount: json.Number("22.5"),
		}

		order, err := req.ToDomain()
		require.NoError(t, err)
		require.NotNil(t, order.Commission)
		assert.Equal(t, "0.005", order.Commission.Rate.String())
		assert.Equal(t, "22.5", order.Commission.Amount.String())
	})

	t.Run("rejects invalid commission amounts", func(t *testing.T) {
		req := validRequest()
		req.Commission = &CommissionRequest{
			Rate:   json.Number("abc"),
			Amount: json.Number("22.5"),
		}

		_, err := req.ToDomain()
		require.Error(t, err)
	})
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeBadRequest, 400},
		{ErrCodeInvalidInput, 400},
		{ErrCodeInvalidJSON, 400},
		{ErrCodeNotFound, 404},
		{ErrCodeRenderFailed, 500},
		{ErrCodeRenderTimeout, 504},
		{ErrCodeStorageFailed, 500},
		{"SOMETHING_ELSE", 500},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidInput, NormalizeErrorCode("INVALID_INPUT"))
	assert.Equal(t, ErrCodeRenderTimeout, NormalizeErrorCode("RENDER_TIMEOUT"))
	assert.Equal(t, ErrCodeStorageFailed, NormalizeErrorCode("UPLOAD_FAILED"))
	assert.Equal(t, ErrCodeStorageFailed, NormalizeErrorCode("PRESIGN_FAILED"))
	assert.Equal(t, ErrCodeRenderFailed, NormalizeErrorCode("INVALID_HTML"))
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound))
	assert.Equal(t, "CUSTOM", NormalizeErrorCode("CUSTOM"))
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID("NOT_FOUND", "Resource not found", "req-123")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Resource not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
	assert.NotZero(t, resp.Error.Timestamp)
}
