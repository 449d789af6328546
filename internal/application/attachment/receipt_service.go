package attachment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rentdesk/backend/internal/domain/attachment"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReceiptService covers receipt reads and the soft-delete path. Linking
// lives in ReceiptLinkService; uploads in UploadService.
type ReceiptService struct {
	receiptRepo attachment.ReceiptRepository
	storage     ObjectStorageService
	config      ServiceConfig
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(
	receiptRepo attachment.ReceiptRepository,
	storage ObjectStorageService,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		storage:     storage,
		config:      DefaultServiceConfig(),
	}
}

// SetConfig sets the service configuration
func (s *ReceiptService) SetConfig(config ServiceConfig) {
	s.config = config
}

// GetByID returns a single receipt with a presigned download URL
func (s *ReceiptService) GetByID(
	ctx context.Context,
	accountID uuid.UUID,
	receiptID uuid.UUID,
) (*ReceiptResponse, error) {
	receipt, err := s.receiptRepo.FindByIDForAccount(ctx, accountID, receiptID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("RECEIPT_NOT_FOUND", "Receipt not found")
		}
		return nil, err
	}

	response := ToReceiptResponse(receipt)
	s.enrichURL(ctx, &response, receipt)
	return &response, nil
}

// List returns receipts for the account, newest first by default
func (s *ReceiptService) List(
	ctx context.Context,
	accountID uuid.UUID,
	filter ReceiptListFilter,
) ([]ReceiptResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	receipts, total, err := s.receiptRepo.FindAllForAccount(ctx, accountID, attachment.ReceiptFilter{
		Processed:  filter.Processed,
		PropertyID: filter.PropertyID,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		OrderBy:    filter.OrderBy,
		OrderDir:   filter.OrderDir,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		responses[i] = ToReceiptResponse(&receipts[i])
		s.enrichURL(ctx, &responses[i], &receipts[i])
	}
	return responses, total, nil
}

// Delete soft-deletes a receipt and then attempts blob cleanup. The row
// update is authoritative; a blob-store failure is logged and the delete
// still succeeds, so the receipt disappears from the user's view regardless
// of storage cleanup.
func (s *ReceiptService) Delete(
	ctx context.Context,
	accountID uuid.UUID,
	receiptID uuid.UUID,
) error {
	receipt, err := s.receiptRepo.FindByIDForAccount(ctx, accountID, receiptID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFound("RECEIPT_NOT_FOUND", "Receipt not found")
		}
		return err
	}

	// Deletion is orthogonal to linking: a processed receipt may be deleted
	// and the expense keeps its receiptId pointing at the soft-deleted row,
	// which stays queryable by id.
	if err := receipt.SoftDelete(); err != nil {
		return err
	}
	if err := s.receiptRepo.Save(ctx, receipt); err != nil {
		return err
	}

	if err := s.storage.DeleteObject(ctx, receipt.StorageKey); err != nil {
		slog.WarnContext(ctx, "failed to delete receipt blob after soft delete",
			"receipt_id", receipt.ID,
			"storage_key", receipt.StorageKey,
			"error", err)
	}
	return nil
}

func (s *ReceiptService) enrichURL(ctx context.Context, response *ReceiptResponse, receipt *attachment.Receipt) {
	if url, _, err := s.storage.GenerateDownloadURL(ctx, receipt.StorageKey, s.config.DownloadURLExpiry); err == nil {
		response.URL = url
	}
}
