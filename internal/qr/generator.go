// Package qr orchestrates payment QR generation: resolve the payee,
// serialize the selected payload variant, render the image and record the
// transaction.
package qr

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"swaypp-service/internal/config"
	"swaypp-service/internal/logcontext"
	"swaypp-service/internal/message"
	"swaypp-service/internal/model"
	"swaypp-service/internal/money"
	"swaypp-service/internal/payee"
	"swaypp-service/internal/payload"
	"swaypp-service/internal/spc"
)

// Format selects the payload variant. Both variants are built from the same
// resolved payee and request; only the serialization differs.
type Format string

const (
	FormatSimple Format = "simple"
	FormatSPC    Format = "spc"
)

const defaultPublishTimeoutMs = 5_000

var (
	// ErrInvalidAmount marks a request whose amount fails boundary
	// validation.
	ErrInvalidAmount = errors.New("amount must be a non-negative number")
	// ErrRenderFailed marks a payload that was built but could not be
	// rendered as an image. The payload text is still usable.
	ErrRenderFailed = errors.New("qr image rendering failed")
	// ErrUnknownFormat marks an unsupported payload format.
	ErrUnknownFormat = errors.New("unknown payload format")
)

var (
	generatorInvalidCounter     = metrics.GetOrCreateCounter(`qr_generator_total{result="invalid_request"}`)
	generatorRenderErrorCounter = metrics.GetOrCreateCounter(`qr_generator_total{result="render_failed"}`)
	generatorSuccessCounter     = metrics.GetOrCreateCounter(`qr_generator_total{result="success"}`)

	generatorDurationHistogram = metrics.GetOrCreateHistogram(`qr_generator_duration_milliseconds`)

	eventsPublishedCounter     = metrics.GetOrCreateCounter(`transaction_events_total{result="published"}`)
	eventsPublishFailedCounter = metrics.GetOrCreateCounter(`transaction_events_total{result="publish_failed"}`)
)

// Renderer turns payload text into an inline image. It is an external
// collaborator; only its failure matters here.
type Renderer interface {
	DataURI(content string) (string, error)
}

// Publisher records generated payloads, best effort.
type Publisher interface {
	Publish(ctx context.Context, event message.TransactionEvent) error
}

type Generator struct {
	resolver           *payee.Resolver
	renderer           Renderer
	publisher          Publisher
	allowSyntheticIBAN bool
	publishTimeout     time.Duration
	logger             *slog.Logger
}

func NewGenerator(resolver *payee.Resolver, renderer Renderer, publisher Publisher, cfg config.QR, logger *slog.Logger) *Generator {
	publishTimeoutMs := cfg.PublishTimeoutMs
	if publishTimeoutMs <= 0 {
		publishTimeoutMs = defaultPublishTimeoutMs
	}

	return &Generator{
		resolver:           resolver,
		renderer:           renderer,
		publisher:          publisher,
		allowSyntheticIBAN: cfg.AllowSyntheticIBAN,
		publishTimeout:     time.Duration(publishTimeoutMs) * time.Millisecond,
		logger:             logger,
	}
}

// Generate builds the payload for the request in the given format and
// renders it as a QR image. When rendering fails the returned result still
// carries the payload text and the error wraps ErrRenderFailed, so callers
// can tell "no payload" from "payload but no image". The transaction event
// is published fire-and-forget and never blocks or fails the call.
func (g *Generator) Generate(ctx context.Context, req model.PaymentRequest, format Format) (*model.QRResult, error) {
	startTime := time.Now()

	ctx = logcontext.AppendCtx(ctx, slog.String("requestId", uuid.New().String()))

	if req.Amount != nil && req.Amount.IsNegative() {
		generatorInvalidCounter.Inc()
		return nil, ErrInvalidAmount
	}

	resolved := g.resolver.Resolve(ctx, req.MerchantID)

	text, err := g.serialize(resolved, req, format)
	if err != nil {
		generatorInvalidCounter.Inc()
		return nil, err
	}

	result := &model.QRResult{
		Format:  string(format),
		Payload: text,
		Payee:   resolved,
	}

	g.publishEvent(ctx, req, text, format)

	image, err := g.renderer.DataURI(text)
	if err != nil {
		g.logger.ErrorContext(ctx, "Error rendering qr image", "error", err)
		generatorRenderErrorCounter.Inc()
		return result, errors.Wrap(ErrRenderFailed, err.Error())
	}
	result.Image = image

	generatorSuccessCounter.Inc()
	generatorDurationHistogram.Update(float64(time.Since(startTime).Milliseconds()))

	return result, nil
}

func (g *Generator) serialize(resolved payee.Profile, req model.PaymentRequest, format Format) (string, error) {
	switch format {
	case FormatSimple:
		simple, err := payload.Build(resolved, req, g.allowSyntheticIBAN)
		if err != nil {
			return "", err
		}
		value, err := json.Marshal(simple)
		if err != nil {
			return "", err
		}
		return string(value), nil
	case FormatSPC:
		return spc.Serialize(resolved, req), nil
	default:
		return "", ErrUnknownFormat
	}
}

// publishEvent mirrors the dashboard behaviour: a transaction is recorded
// only for identified merchants with a fixed amount.
func (g *Generator) publishEvent(ctx context.Context, req model.PaymentRequest, text string, format Format) {
	if g.publisher == nil || req.MerchantID == "" || req.Amount == nil {
		return
	}

	evt := message.TransactionEvent{
		ID:            uuid.New(),
		MerchantID:    req.MerchantID,
		Amount:        money.FormatAmount(req.Amount),
		Currency:      money.NormalizeCurrency(req.Currency),
		Description:   req.Message,
		PayloadPrefix: message.TruncatePayload(text),
		Format:        string(format),
		CreatedAt:     time.Now(),
	}

	attrs := logcontext.Attrs(ctx)

	go func() {
		publishCtx, cancel := context.WithTimeout(context.Background(), g.publishTimeout)
		defer cancel()
		publishCtx = logcontext.AppendCtx(publishCtx, attrs...)

		if err := g.publisher.Publish(publishCtx, evt); err != nil {
			g.logger.ErrorContext(publishCtx, "Error publishing transaction event", "error", err, "merchantId", evt.MerchantID)
			eventsPublishFailedCounter.Inc()
			return
		}
		eventsPublishedCounter.Inc()
	}()
}
