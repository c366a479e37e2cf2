// Package api exposes the QR generation HTTP surface.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"swaypp-service/internal/model"
	"swaypp-service/internal/money"
	"swaypp-service/internal/payload"
	"swaypp-service/internal/qr"
)

type Generator interface {
	Generate(ctx context.Context, req model.PaymentRequest, format qr.Format) (*model.QRResult, error)
}

type Handler struct {
	generator Generator
	logger    *slog.Logger
}

func NewHandler(generator Generator, logger *slog.Logger) *Handler {
	return &Handler{generator: generator, logger: logger}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /liveness", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /qr/spc", h.handleSPC)
	mux.HandleFunc("POST /qr/simple", h.handleSimple)
}

type paymentData struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Beneficiary string `json:"beneficiary"`
	IBAN        string `json:"iban"`
	Message     string `json:"message"`
}

type generateResponse struct {
	Success bool         `json:"success"`
	QRCode  string       `json:"qrCode,omitempty"`
	QRData  string       `json:"qrData,omitempty"`
	Data    *paymentData `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func (h *Handler) handleSPC(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, qr.FormatSPC)
}

func (h *Handler) handleSimple(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, qr.FormatSimple)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, format qr.Format) {
	var req model.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, generateResponse{Error: "invalid request body"})
		return
	}

	result, err := h.generator.Generate(r.Context(), req, format)

	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, generateResponse{
			Success: true,
			QRCode:  result.Image,
			QRData:  result.Payload,
			Data: &paymentData{
				Amount:      money.FormatAmount(req.Amount),
				Currency:    money.NormalizeCurrency(req.Currency),
				Beneficiary: result.Payee.BeneficiaryName,
				IBAN:        result.Payee.IBAN,
				Message:     req.MessageOrDefault(),
			},
		})
	case errors.Is(err, qr.ErrInvalidAmount) || errors.Is(err, payload.ErrNoIBAN):
		respondJSON(w, http.StatusBadRequest, generateResponse{Error: err.Error()})
	case errors.Is(err, qr.ErrRenderFailed) && result != nil:
		// The payload survived even though the image did not; return it so
		// the caller can retry rendering or log the payload.
		respondJSON(w, http.StatusInternalServerError, generateResponse{
			Error:  qr.ErrRenderFailed.Error(),
			QRData: result.Payload,
		})
	default:
		h.logger.ErrorContext(r.Context(), "Error generating qr payload", "error", err)
		respondJSON(w, http.StatusInternalServerError, generateResponse{Error: "internal server error"})
	}
}

func respondJSON(w http.ResponseWriter, status int, body generateResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
