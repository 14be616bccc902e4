package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/gateway"
)

// DefaultStripeBaseURL is the production Stripe API endpoint
const DefaultStripeBaseURL = "https://api.stripe.com"

// StripeClient implements the payment processor port against the Stripe
// HTTP API (form-encoded requests, secret key as basic auth username).
// Failures come back as discriminated *error.PaymentError values.
type StripeClient struct {
	secretKey string
	baseURL   string
	currency  string
	client    *http.Client
	logger    coreport.Logger
}

// NewStripeClient creates a client for the Stripe API
func NewStripeClient(secretKey, baseURL string, timeout time.Duration, logger coreport.Logger) gateway.PaymentProcessor {
	if baseURL == "" {
		baseURL = DefaultStripeBaseURL
	}
	return &StripeClient{
		secretKey: secretKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		currency:  "usd",
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// stripeError is the error envelope Stripe returns on failures
type stripeError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// post makes a form-encoded request to the Stripe API and decodes the
// JSON response into ret
func (c *StripeClient) post(ctx context.Context, endpoint string, form url.Values, ret interface{}) error {
	uri := fmt.Sprintf("%s/%s", c.baseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, strings.NewReader(form.Encode()))
	if err != nil {
		return errs.NewPaymentError(errs.PaymentInvalidRequest, "failed to create request", err)
	}

	req.SetBasicAuth(c.secretKey, "")
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.NewPaymentError(errs.PaymentNetworkError, "failed to reach payment processor", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.mapErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(ret); err != nil {
		return errs.NewPaymentError(errs.PaymentNetworkError, "failed to decode response", err)
	}

	return nil
}

// mapErrorResponse converts a non-200 Stripe response into a
// discriminated payment error
func (c *StripeClient) mapErrorResponse(resp *http.Response) error {
	var body stripeError
	message := fmt.Sprintf("processor returned status %d", resp.StatusCode)
	errType := ""

	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Message != "" {
		message = body.Error.Message
		errType = body.Error.Type
	}

	switch {
	case resp.StatusCode == http.StatusPaymentRequired || errType == "card_error":
		return errs.NewPaymentError(errs.PaymentDeclined, message, nil)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return errs.NewPaymentError(errs.PaymentInvalidRequest, message, nil)
	default:
		return errs.NewPaymentError(errs.PaymentNetworkError, message, nil)
	}
}

// CreateCustomer registers a customer with the processor using an opaque
// card token
func (c *StripeClient) CreateCustomer(ctx context.Context, netid, cardToken string) (string, error) {
	var response struct {
		ID string `json:"id"`
	}

	form := url.Values{
		"description": {netid},
		"source":      {cardToken},
	}
	if err := c.post(ctx, "v1/customers", form, &response); err != nil {
		return "", err
	}

	c.logger.Debug("Processor customer created", map[string]any{
		"netid":       netid,
		"customer_id": response.ID,
	})
	return response.ID, nil
}

// Charge charges the customer the given amount in cents
func (c *StripeClient) Charge(ctx context.Context, customerID string, amountInCents int64, description string) (string, error) {
	var response struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}

	form := url.Values{
		"amount":      {strconv.FormatInt(amountInCents, 10)},
		"currency":    {c.currency},
		"customer":    {customerID},
		"description": {description},
	}
	if err := c.post(ctx, "v1/charges", form, &response); err != nil {
		return "", err
	}

	if response.Status == "failed" {
		return "", errs.NewPaymentError(errs.PaymentDeclined, "charge failed", nil)
	}

	return response.ID, nil
}
