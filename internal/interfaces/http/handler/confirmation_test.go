package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appdocs "github.com/samverms/Kadouri-sub002/internal/application/documents"
	"github.com/samverms/Kadouri-sub002/internal/infrastructure/printing"
	"github.com/samverms/Kadouri-sub002/internal/infrastructure/storage"
	"github.com/samverms/Kadouri-sub002/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(ctx context.Context, req *printing.RenderRequest) (*printing.RenderResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &printing.RenderResult{
		PDFData:        []byte("%PDF-1.4 fake"),
		RenderDuration: time.Millisecond,
	}, nil
}

func newTestRouter(t *testing.T, renderer printing.PDFRenderer, store storage.ObjectStorage) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	tmpl, err := printing.NewConfirmationTemplate()
	require.NoError(t, err)
	svc := appdocs.NewConfirmationService(tmpl, renderer, store, nil)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	api := engine.Group("/api/v1")
	NewConfirmationHandler(svc, nil).RegisterRoutes(api)
	return engine
}

func validBody(t *testing.T) []byte {
	t.Helper()
	body := map[string]any{
		"orderNo": "ORD-1001",
		"date":    "2025-03-01",
		"seller":  map[string]any{"code": "S1", "name": "Acme"},
		"buyer":   map[string]any{"code": "B1", "name": "Beta Co"},
		"product": map[string]any{"code": "P1", "name": "Almonds"},
		"quantity": 1000,
		"unit":     "lbs",
		"price":    4.5,
		"total":    4500,
		"agent":    map[string]any{"code": "A1", "name": "Dana"},
	}
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return data
}

func doRequest(router *gin.Engine, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestConfirmationHandler_Download(t *testing.T) {
	t.Run("returns inline PDF bytes", func(t *testing.T) {
		router := newTestRouter(t, &fakeRenderer{}, nil)

		w := doRequest(router, "/api/v1/pdf/orders/seller", validBody(t))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, `inline; filename="seller-ORD-1001.pdf"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, []byte("%PDF-1.4 fake"), w.Body.Bytes())
	})

	t.Run("role parsing is case-insensitive", func(t *testing.T) {
		router := newTestRouter(t, &fakeRenderer{}, nil)

		w := doRequest(router, "/api/v1/pdf/orders/BUYER", validBody(t))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `inline; filename="buyer-ORD-1001.pdf"`, w.Header().Get("Content-Disposition"))
	})

	t.Run("unknown role is a 400", func(t *testing.T) {
		router := newTestRouter(t, &fakeRenderer{}, nil)

		w := doRequest(router, "/api/v1/pdf/orders/agent", validBody(t))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INVALID_INPUT")
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		router := newTestRouter(t, &fakeRenderer{}, nil)

		w := doRequest(router, "/api/v1/pdf/orders/seller", []byte(`{"orderNo":`))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INVALID_JSON")
	})

	t.Run("missing required field is a 400", func(t *testing.T) {
		router := newTestRouter(t, &fakeRenderer{}, nil)

		var body map[string]any
		require.NoError(t, json.Unmarshal(validBody(t), &body))
		delete(body, "orderNo")
		data, err := json.Marshal(body)
		require.NoError(t, err)

		w := doRequest(router, "/api/v1/pdf/orders/seller", data)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_VALIDATION")
		assert.Contains(t, w.Body.String(), "orderNo")
	})

	t.Run("render timeout maps to 504", func(t *testing.T) {
		renderer := &fakeRenderer{
			err: printing.NewRenderError(printing.ErrCodeRenderTimeout, "rendering timed out", nil),
		}
		router := newTestRouter(t, renderer, nil)

		w := doRequest(router, "/api/v1/pdf/orders/seller", validBody(t))

		require.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_RENDER_TIMEOUT")
	})

	t.Run("render failure maps to 500", func(t *testing.T) {
		renderer := &fakeRenderer{
			err: printing.NewRenderError(printing.ErrCodeRenderFailed, "browser crashed", nil),
		}
		router := newTestRouter(t, renderer, nil)

		w := doRequest(router, "/api/v1/pdf/orders/seller", validBody(t))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_RENDER_FAILED")
	})

	t.Run("response echoes the request ID", func(t *testing.T) {
		router := newTestRouter(t, &fakeRenderer{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/pdf/orders/seller", bytes.NewReader(validBody(t)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	})
}

func TestConfirmationHandler_Link(t *testing.T) {
	t.Run("stored branch returns the presigned URL", func(t *testing.T) {
		stub := storage.NewStubObjectStorage()
		router := newTestRouter(t, &fakeRenderer{}, stub)

		w := doRequest(router, "/api/v1/pdf/orders/seller/link", validBody(t))

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Reference string `json:"reference"`
				ExpiresIn int64  `json:"expires_in"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "https://storage.example.com/orders/ORD-1001/seller-ORD-1001.pdf", resp.Data.Reference)
		assert.Equal(t, int64(604800), resp.Data.ExpiresIn)

		_, ok := stub.Object("orders/ORD-1001/seller-ORD-1001.pdf")
		assert.True(t, ok)
	})

	t.Run("inline branch returns a data URL with zero expiry", func(t *testing.T) {
		router := newTestRouter(t, &fakeRenderer{}, nil)

		w := doRequest(router, "/api/v1/pdf/orders/buyer/link", validBody(t))

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Reference string `json:"reference"`
				ExpiresIn int64  `json:"expires_in"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Data.Reference, "data:application/pdf;base64,")
		assert.Equal(t, int64(0), resp.Data.ExpiresIn)
	})

	t.Run("upload failure is a 500, not an inline fallback", func(t *testing.T) {
		stub := storage.NewStubObjectStorage()
		stub.UploadErr = storage.NewStorageError(storage.ErrCodeUploadFailed, "bucket unreachable", nil)
		router := newTestRouter(t, &fakeRenderer{}, stub)

		w := doRequest(router, "/api/v1/pdf/orders/seller/link", validBody(t))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_STORAGE_FAILED")
		assert.NotContains(t, w.Body.String(), "data:application/pdf")
	})
}
