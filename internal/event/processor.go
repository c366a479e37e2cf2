// Package event persists transaction events as audit rows.
package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"swaypp-service/internal/db"
	"swaypp-service/internal/message"
)

type Processor struct {
	repo   *db.TransactionRepository
	logger *slog.Logger
}

func NewProcessor(repo *db.TransactionRepository, logger *slog.Logger) *Processor {
	return &Processor{repo: repo, logger: logger}
}

func (p *Processor) Process(ctx context.Context, event message.TransactionEvent) error {
	p.logger.InfoContext(ctx, "Processing transaction event", "id", event.ID, "merchantId", event.MerchantID)

	id := event.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	entity := &db.PaymentTransactionEntity{
		ID:            id,
		MerchantID:    event.MerchantID,
		Amount:        event.Amount,
		Currency:      event.Currency,
		Description:   event.Description,
		PayloadPrefix: message.TruncatePayload(event.PayloadPrefix),
		Format:        event.Format,
		CreatedAt:     createdAt,
	}

	if err := p.repo.Create(ctx, entity); err != nil {
		p.logger.ErrorContext(ctx, "Error creating transaction record", "error", err)
		return err
	}

	p.logger.InfoContext(ctx, "Successfully recorded transaction", "id", id)
	return nil
}
