package ioka

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"terek_backend/internal/config"
	"terek_backend/internal/logger"
)

// Provider order statuses.
const (
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
	StatusExpired   = "EXPIRED"
	StatusDeclined  = "DECLINED"
)

// Gateway wraps the ioka payment provider. All network failures are
// converted to error returns; nothing panics or propagates raw transport
// faults to callers.
type Gateway interface {
	// Enabled reports whether an API key is configured. When false the
	// reconciliation engine uses the bypass-completion path.
	Enabled() bool
	CreateOrder(ctx context.Context, p CreateOrderParams) (*Order, error)
	GetStatus(ctx context.Context, orderID string) (*Order, error)
	// VerifySignature checks the HMAC-SHA256 of the raw webhook body against
	// the X-Ioka-Signature header in constant time. With no secret
	// configured it fails open outside production.
	VerifySignature(payload []byte, signature string) bool
	Refund(ctx context.Context, orderID string, amount *int64) (*RefundResult, error)
}

type CreateOrderParams struct {
	// Amount in tenge; transmitted to the provider in tiyn (x100).
	Amount        int64
	Description   string
	DonationID    string
	CustomerEmail string
	CustomerName  string
}

type Order struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	CheckoutURL string `json:"checkout_url"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	ExternalID  string `json:"external_id"`
}

type RefundResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

type GatewayImpl struct {
	httpClient    *http.Client
	apiKey        string
	baseURL       string
	webhookSecret string
	frontendURL   string
	backendURL    string
	failOpen      bool
}

func NewGateway(cfg *config.Config) Gateway {
	return &GatewayImpl{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:        cfg.Ioka.APIKey,
		baseURL:       cfg.Ioka.BaseURL,
		webhookSecret: cfg.Ioka.WebhookSecret,
		frontendURL:   cfg.URLs.Frontend,
		backendURL:    cfg.URLs.Backend,
		failOpen:      !cfg.IsProduction(),
	}
}

func (g *GatewayImpl) Enabled() bool {
	return g.apiKey != ""
}

func (g *GatewayImpl) headers(req *http.Request) {
	req.Header.Set("API-KEY", g.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

func (g *GatewayImpl) CreateOrder(ctx context.Context, p CreateOrderParams) (*Order, error) {
	payload := map[string]interface{}{
		// 1 tenge = 100 tiyn
		"amount":         p.Amount * 100,
		"currency":       "KZT",
		"capture_method": "AUTO",
		"external_id":    p.DonationID,
		"description":    p.Description,
		"back_url":       fmt.Sprintf("%s/payment/success?donation_id=%s", g.frontendURL, p.DonationID),
		"success_url":    fmt.Sprintf("%s/payment/success?donation_id=%s", g.frontendURL, p.DonationID),
		"failure_url":    fmt.Sprintf("%s/donate?status=failed&donation_id=%s", g.frontendURL, p.DonationID),
		"webhook_url":    g.backendURL + "/api/webhooks/ioka",
	}

	customer := map[string]string{}
	if p.CustomerEmail != "" {
		customer["email"] = p.CustomerEmail
	}
	if p.CustomerName != "" {
		customer["name"] = p.CustomerName
	}
	if len(customer) > 0 {
		payload["customer"] = customer
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v2/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	g.headers(req)

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	logger.GatewayLog("create_order", p.DonationID, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	return decodeOrder(resp)
}

func (g *GatewayImpl) GetStatus(ctx context.Context, orderID string) (*Order, error) {
	url := fmt.Sprintf("%s/v2/orders/%s", g.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}
	g.headers(req)

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	logger.GatewayLog("get_status", orderID, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("get order status: %w", err)
	}
	defer resp.Body.Close()

	return decodeOrder(resp)
}

func (g *GatewayImpl) VerifySignature(payload []byte, signature string) bool {
	if g.webhookSecret == "" {
		// Deliberate fallback for non-production deployments without a
		// shared secret; flagged at startup.
		return g.failOpen
	}

	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *GatewayImpl) Refund(ctx context.Context, orderID string, amount *int64) (*RefundResult, error) {
	url := fmt.Sprintf("%s/v2/orders/%s/refund", g.baseURL, orderID)

	var body io.Reader
	if amount != nil {
		raw, err := json.Marshal(map[string]int64{"amount": *amount})
		if err != nil {
			return nil, fmt.Errorf("marshal refund payload: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("build refund request: %w", err)
	}
	g.headers(req)

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	logger.GatewayLog("refund", orderID, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("refund order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ioka refund error %d: %s", resp.StatusCode, string(raw))
	}

	var result RefundResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode refund response: %w", err)
	}
	return &result, nil
}

// decodeOrder handles both documented response shapes: the order object at
// the root or nested under an "order" key.
func decodeOrder(resp *http.Response) (*Order, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ioka response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ioka error %d: %s", resp.StatusCode, string(raw))
	}

	var envelope struct {
		Order *Order `json:"order"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Order != nil && envelope.Order.ID != "" {
		return envelope.Order, nil
	}

	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("decode ioka response: %w", err)
	}
	return &order, nil
}
