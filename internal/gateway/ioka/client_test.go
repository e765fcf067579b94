package ioka

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"terek_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL, env, secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Ioka.APIKey = "test-api-key"
	cfg.Ioka.BaseURL = baseURL
	cfg.Ioka.WebhookSecret = secret
	cfg.URLs.Frontend = "https://front.test"
	cfg.URLs.Backend = "https://back.test"
	cfg.Server.Env = env
	return cfg
}

func TestCreateOrder_BuildsProviderPayload(t *testing.T) {
	var captured map[string]interface{}
	var gotAPIKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/orders", r.URL.Path)
		gotAPIKey = r.Header.Get("API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"order": map[string]interface{}{
				"id":           "ord_123",
				"status":       "UNPAID",
				"checkout_url": "https://checkout.test/ord_123",
				"external_id":  "don_1",
			},
		})
	}))
	defer server.Close()

	g := NewGateway(testConfig(server.URL, "test", ""))

	order, err := g.CreateOrder(context.Background(), CreateOrderParams{
		Amount:        25000,
		Description:   "Grove",
		DonationID:    "don_1",
		CustomerEmail: "donor@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "test-api-key", gotAPIKey)
	// Tenge to tiyn.
	assert.Equal(t, float64(2500000), captured["amount"])
	assert.Equal(t, "KZT", captured["currency"])
	assert.Equal(t, "AUTO", captured["capture_method"])
	assert.Equal(t, "don_1", captured["external_id"])
	assert.Equal(t, "https://back.test/api/webhooks/ioka", captured["webhook_url"])
	assert.Contains(t, captured["success_url"], "https://front.test")

	assert.Equal(t, "ord_123", order.ID)
	assert.Equal(t, "https://checkout.test/ord_123", order.CheckoutURL)
}

func TestDecodeOrder_RootLevelResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "ord_9",
			"status": "PAID",
		})
	}))
	defer server.Close()

	g := NewGateway(testConfig(server.URL, "test", ""))

	order, err := g.GetStatus(context.Background(), "ord_9")
	require.NoError(t, err)
	assert.Equal(t, "ord_9", order.ID)
	assert.Equal(t, StatusPaid, order.Status)
}

func TestCreateOrder_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid amount"}`))
	}))
	defer server.Close()

	g := NewGateway(testConfig(server.URL, "test", ""))

	_, err := g.CreateOrder(context.Background(), CreateOrderParams{Amount: -1, DonationID: "don_1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"event":"payment.succeeded"}`)

	mac := hmac.New(sha256.New, []byte("shared-secret"))
	mac.Write(payload)
	valid := hex.EncodeToString(mac.Sum(nil))

	g := NewGateway(testConfig("http://unused", "production", "shared-secret"))
	assert.True(t, g.VerifySignature(payload, valid))
	assert.False(t, g.VerifySignature(payload, "deadbeef"))
	assert.False(t, g.VerifySignature([]byte("tampered"), valid))
}

func TestVerifySignature_NoSecretFailsOpenOutsideProduction(t *testing.T) {
	dev := NewGateway(testConfig("http://unused", "development", ""))
	assert.True(t, dev.VerifySignature([]byte("{}"), ""))

	prod := NewGateway(testConfig("http://unused", "production", ""))
	assert.False(t, prod.VerifySignature([]byte("{}"), ""))
}

func TestRefund_OptionalAmount(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/orders/ord_5/refund", r.URL.Path)
		buf := make([]byte, r.ContentLength)
		if r.ContentLength > 0 {
			r.Body.Read(buf)
		}
		gotBody = buf
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "ref_1", "status": "APPROVED"})
	}))
	defer server.Close()

	g := NewGateway(testConfig(server.URL, "test", ""))

	amount := int64(500)
	result, err := g.Refund(context.Background(), "ord_5", &amount)
	require.NoError(t, err)
	assert.Equal(t, "ref_1", result.ID)
	assert.JSONEq(t, `{"amount":500}`, string(gotBody))

	_, err = g.Refund(context.Background(), "ord_5", nil)
	require.NoError(t, err)
}
