package http

import (
	"errors"
	"io"
	"net/http"

	d "github.com/fjod/go_cart/checkout-api/internal/domain"
	"github.com/fjod/go_cart/checkout-api/internal/metrics"
	"github.com/fjod/go_cart/checkout-api/internal/service"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const DefaultMaxRequestBodySize = 1 << 20 // 1MB

const msgBodyTooLarge = "Request body too large"

type CheckoutHandler struct {
	svc         service.CheckoutService
	metrics     *metrics.Metrics
	maxBodySize int64
}

func NewCheckoutHandler(svc service.CheckoutService, m *metrics.Metrics, maxBodySize int64) *CheckoutHandler {
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxRequestBodySize
	}
	return &CheckoutHandler{
		svc:         svc,
		metrics:     m,
		maxBodySize: maxBodySize,
	}
}

// POST /api/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	span := trace.SpanFromContext(r.Context())
	contentType := r.Header.Get("Content-Type")

	// content type is judged before the body is read
	if !d.IsJSONContentType(contentType) {
		h.reject(w, span, "not_json", http.StatusBadRequest, d.ErrNotJSON.Error())
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.reject(w, span, "body_too_large", http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		h.reject(w, span, "invalid_body", http.StatusBadRequest, d.ErrInvalidBody.Error())
		return
	}

	items, err := d.ParseCheckoutRequest(contentType, body)
	if err != nil {
		var mr *d.MalformedRequest
		if errors.As(err, &mr) {
			h.reject(w, span, rejectionReason(mr.Cause), http.StatusBadRequest, mr.Error())
			return
		}
		h.reject(w, span, "internal", http.StatusInternalServerError, "internal server error")
		return
	}

	status, err := h.svc.Checkout(r.Context(), getRequestID(r.Context()), items)
	if err != nil {
		var mr *d.MalformedRequest
		if errors.As(err, &mr) {
			h.reject(w, span, rejectionReason(mr.Cause), http.StatusBadRequest, mr.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	span.SetAttributes(
		attribute.String("checkout.status", status.String()),
		attribute.Int("checkout.item_count", len(items)),
	)
	respondJSON(w, http.StatusOK, MessageResponse{Message: d.SuccessMessage})
}

func (h *CheckoutHandler) reject(w http.ResponseWriter, span trace.Span, reason string, status int, message string) {
	h.metrics.Rejected(reason)
	span.SetAttributes(
		attribute.String("checkout.status", d.CheckoutStatusRejected.String()),
		attribute.String("checkout.rejection", reason),
	)
	respondError(w, status, message)
}

func rejectionReason(cause error) string {
	switch {
	case errors.Is(cause, d.ErrNotJSON):
		return "not_json"
	case errors.Is(cause, d.ErrInvalidBody):
		return "invalid_body"
	case errors.Is(cause, d.ErrInvalidItems):
		return "invalid_items"
	default:
		return "malformed"
	}
}
