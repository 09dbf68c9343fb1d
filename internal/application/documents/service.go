// Package documents orchestrates order confirmation rendering, storage
// and delivery.
package documents

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/samverms/Kadouri-sub002/internal/domain/documents"
	"github.com/samverms/Kadouri-sub002/internal/domain/shared"
	"github.com/samverms/Kadouri-sub002/internal/infrastructure/printing"
	"github.com/samverms/Kadouri-sub002/internal/infrastructure/storage"
	"go.uber.org/zap"
)

// signedURLTTL is how long stored confirmation links stay valid
const signedURLTTL = 7 * 24 * time.Hour

// inlineDataPrefix precedes the base64 payload of an inline document
const inlineDataPrefix = "data:application/pdf;base64,"

// ConfirmationService renders order confirmations and delivers them either
// as raw PDF bytes or as a reference string. The reference is a presigned
// download URL when object storage is configured, and an inline data URL
// otherwise. Which branch is taken is fixed at construction: a nil storage
// means the inline branch, and no storage I/O ever happens on it.
type ConfirmationService struct {
	template *printing.ConfirmationTemplate
	renderer printing.PDFRenderer
	storage  storage.ObjectStorage
	logger   *zap.Logger
}

// NewConfirmationService creates a new ConfirmationService.
// Pass a nil store to serve inline data URLs instead of stored documents.
func NewConfirmationService(
	template *printing.ConfirmationTemplate,
	renderer printing.PDFRenderer,
	store storage.ObjectStorage,
	logger *zap.Logger,
) *ConfirmationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfirmationService{
		template: template,
		renderer: renderer,
		storage:  store,
		logger:   logger,
	}
}

// StorageConfigured reports whether documents are delivered through object
// storage rather than inline
func (s *ConfirmationService) StorageConfigured() bool {
	return s.storage != nil
}

// ReferenceTTL returns how long a returned reference stays valid. Inline
// data URLs do not expire, so the inline branch reports zero.
func (s *ConfirmationService) ReferenceTTL() time.Duration {
	if s.storage == nil {
		return 0
	}
	return signedURLTTL
}

// RenderConfirmation renders the confirmation document for one order and
// role and returns the PDF bytes
func (s *ConfirmationService) RenderConfirmation(ctx context.Context, order *documents.OrderConfirmation, role documents.Role) ([]byte, error) {
	if order == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order is required")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid document role: "+string(role))
	}

	html, err := s.template.Render(order, role)
	if err != nil {
		return nil, err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:    html,
		Title:   s.template.Title(order, role),
		Margins: printing.ConfirmationMargins(),
	})
	if err != nil {
		s.logger.Error("confirmation render failed",
			zap.String("order_number", order.OrderNumber),
			zap.String("role", string(role)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("confirmation rendered",
		zap.String("order_number", order.OrderNumber),
		zap.String("role", string(role)),
		zap.Int("bytes", len(result.PDFData)),
		zap.Duration("duration", result.RenderDuration))

	return result.PDFData, nil
}

// RenderAndStoreConfirmation renders the confirmation document and returns
// a reference to it. With storage configured the document is uploaded and a
// presigned download URL comes back; storage failures surface as errors and
// never degrade to the inline form. Without storage the document is returned
// as a data URL and no storage I/O happens.
func (s *ConfirmationService) RenderAndStoreConfirmation(ctx context.Context, order *documents.OrderConfirmation, role documents.Role) (string, error) {
	data, err := s.RenderConfirmation(ctx, order, role)
	if err != nil {
		return "", err
	}

	if s.storage == nil {
		return inlineDataPrefix + base64.StdEncoding.EncodeToString(data), nil
	}

	key := confirmationKey(order.OrderNumber, role)

	if err := s.storage.Upload(ctx, key, data, storage.ContentTypePDF); err != nil {
		s.logger.Error("confirmation upload failed",
			zap.String("key", key),
			zap.Error(err))
		return "", err
	}

	url, expiresAt, err := s.storage.PresignDownload(ctx, key, signedURLTTL)
	if err != nil {
		s.logger.Error("confirmation presign failed",
			zap.String("key", key),
			zap.Error(err))
		return "", err
	}

	s.logger.Info("confirmation stored",
		zap.String("key", key),
		zap.Time("expires_at", expiresAt))

	return url, nil
}

// confirmationKey builds the storage key for one order and role.
// Documents for the same order share a prefix, and a re-render for the same
// role overwrites the previous object.
func confirmationKey(orderNumber string, role documents.Role) string {
	return fmt.Sprintf("orders/%s/%s-%s.pdf", orderNumber, role.KeyName(), orderNumber)
}
