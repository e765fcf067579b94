package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"terek_backend/internal/gateway/ioka"
	"terek_backend/internal/services/dto"
	"terek_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	verifyResult bool
}

func (g *stubGateway) Enabled() bool { return true }
func (g *stubGateway) CreateOrder(context.Context, ioka.CreateOrderParams) (*ioka.Order, error) {
	return nil, nil
}
func (g *stubGateway) GetStatus(context.Context, string) (*ioka.Order, error) { return nil, nil }
func (g *stubGateway) VerifySignature(payload []byte, signature string) bool {
	return g.verifyResult
}
func (g *stubGateway) Refund(context.Context, string, *int64) (*ioka.RefundResult, error) {
	return nil, nil
}

type stubPaymentService struct {
	webhookCalls int
	lastEvent    *ioka.WebhookEvent
}

func (s *stubPaymentService) Initiate(context.Context, string, string) (*dto.InitiatePaymentResponse, error) {
	return nil, nil
}
func (s *stubPaymentService) InitiateGuest(context.Context, string) (*dto.InitiatePaymentResponse, error) {
	return nil, nil
}
func (s *stubPaymentService) HandleWebhook(_ context.Context, event *ioka.WebhookEvent) error {
	s.webhookCalls++
	s.lastEvent = event
	return nil
}
func (s *stubPaymentService) PollStatus(context.Context, string) (*dto.DonationStatusResponse, error) {
	return nil, nil
}
func (s *stubPaymentService) Refund(context.Context, string, *int64) (*ioka.RefundResult, error) {
	return nil, nil
}

func newWebhookRouter(verify bool) (*gin.Engine, *stubPaymentService) {
	gin.SetMode(gin.TestMode)

	payments := &stubPaymentService{}
	handler := NewWebhookHandler(NewBaseHandler(validator.New()), payments, &stubGateway{verifyResult: verify})

	router := gin.New()
	router.POST("/api/webhooks/ioka", handler.HandleIoka)
	return router, payments
}

func TestHandleIoka_RejectsBadSignatureBeforeProcessing(t *testing.T) {
	router, payments := newWebhookRouter(false)

	body := []byte(`{"event":"payment.succeeded","order":{"external_id":"don_1"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/ioka", bytes.NewReader(body))
	req.Header.Set("X-Ioka-Signature", "bogus")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// Nothing may be mutated on a rejected signature.
	assert.Equal(t, 0, payments.webhookCalls)
}

func TestHandleIoka_AcceptsVerifiedEvent(t *testing.T) {
	router, payments := newWebhookRouter(true)

	body := []byte(`{"event":"payment.succeeded","order":{"id":"ord_1","external_id":"don_1"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/ioka", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, payments.webhookCalls)
	assert.Equal(t, "payment.succeeded", payments.lastEvent.Event)
	assert.Equal(t, "don_1", payments.lastEvent.DonationID())
}

func TestHandleIoka_MalformedBody(t *testing.T) {
	router, payments := newWebhookRouter(true)

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/ioka", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, payments.webhookCalls)
}
