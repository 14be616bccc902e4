package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStripeTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful creation", func(t *testing.T) {
		server := newStripeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/customers", r.URL.Path)

			user, _, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "sk_test_123", user)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "jsmith2", r.PostForm.Get("description"))
			assert.Equal(t, "tok_visa", r.PostForm.Get("source"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "cus_123"}`))
		})

		client := NewStripeClient("sk_test_123", server.URL, time.Second, logger.NewNoopLogger())

		customerID, err := client.CreateCustomer(ctx, "jsmith2", "tok_visa")

		require.NoError(t, err)
		assert.Equal(t, "cus_123", customerID)
	})

	t.Run("Invalid card token", func(t *testing.T) {
		server := newStripeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"error": {"type": "card_error", "message": "Your card was declined."}}`))
		})

		client := NewStripeClient("sk_test_123", server.URL, time.Second, logger.NewNoopLogger())

		customerID, err := client.CreateCustomer(ctx, "jsmith2", "tok_bad")

		assert.Empty(t, customerID)
		assert.True(t, errs.IsPaymentError(err))
		assert.Equal(t, errs.PaymentDeclined, errs.PaymentKind(err))
	})

	t.Run("Malformed request", func(t *testing.T) {
		server := newStripeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "Missing required param: source."}}`))
		})

		client := NewStripeClient("sk_test_123", server.URL, time.Second, logger.NewNoopLogger())

		_, err := client.CreateCustomer(ctx, "jsmith2", "")

		assert.True(t, errs.IsPaymentError(err))
		assert.Equal(t, errs.PaymentInvalidRequest, errs.PaymentKind(err))
	})

	t.Run("Unreachable processor", func(t *testing.T) {
		client := NewStripeClient("sk_test_123", "http://127.0.0.1:1", 100*time.Millisecond, logger.NewNoopLogger())

		_, err := client.CreateCustomer(ctx, "jsmith2", "tok_visa")

		assert.True(t, errs.IsPaymentError(err))
		assert.Equal(t, errs.PaymentNetworkError, errs.PaymentKind(err))
	})
}

func TestCharge(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful charge", func(t *testing.T) {
		server := newStripeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/charges", r.URL.Path)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "1000", r.PostForm.Get("amount"))
			assert.Equal(t, "usd", r.PostForm.Get("currency"))
			assert.Equal(t, "cus_123", r.PostForm.Get("customer"))
			assert.Equal(t, "Semester dues", r.PostForm.Get("description"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "ch_123", "status": "succeeded"}`))
		})

		client := NewStripeClient("sk_test_123", server.URL, time.Second, logger.NewNoopLogger())

		chargeID, err := client.Charge(ctx, "cus_123", 1000, "Semester dues")

		require.NoError(t, err)
		assert.Equal(t, "ch_123", chargeID)
	})

	t.Run("Failed charge status", func(t *testing.T) {
		server := newStripeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "ch_123", "status": "failed"}`))
		})

		client := NewStripeClient("sk_test_123", server.URL, time.Second, logger.NewNoopLogger())

		chargeID, err := client.Charge(ctx, "cus_123", 1000, "Semester dues")

		assert.Empty(t, chargeID)
		assert.True(t, errs.IsPaymentError(err))
		assert.Equal(t, errs.PaymentDeclined, errs.PaymentKind(err))
	})

	t.Run("Server error maps to network failure", func(t *testing.T) {
		server := newStripeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		client := NewStripeClient("sk_test_123", server.URL, time.Second, logger.NewNoopLogger())

		_, err := client.Charge(ctx, "cus_123", 1000, "Semester dues")

		assert.True(t, errs.IsPaymentError(err))
		assert.Equal(t, errs.PaymentNetworkError, errs.PaymentKind(err))
	})
}
