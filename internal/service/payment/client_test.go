package payment_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orderpay/internal/domain"
	"github.com/vladislavdragonenkov/orderpay/internal/service/payment"
)

func TestClientCharge_Approved(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/charge", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "ref": "PAY-REAL-1"})
	}))
	defer srv.Close()

	client := payment.NewClient(srv.URL, nil)
	result, err := client.Charge("user-1", 12.34)
	require.NoError(t, err)
	require.Equal(t, domain.ChargeStatusApproved, result.Status)
	require.Equal(t, "PAY-REAL-1", result.Reference)
	require.Equal(t, "user-1", gotBody["user_id"])
	require.InDelta(t, 12.34, gotBody["amount"], 1e-9)
}

func TestClientCharge_Declined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "insufficient funds"})
	}))
	defer srv.Close()

	client := payment.NewClient(srv.URL, nil)
	result, err := client.Charge("user-1", 50)
	require.NoError(t, err, "decline is a business outcome, not a transport error")
	require.Equal(t, domain.ChargeStatusDeclined, result.Status)
	require.Equal(t, "insufficient funds", result.Reason)
	require.Empty(t, result.Reference)
}

func TestClientCharge_ProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := payment.NewClient(srv.URL, nil)
	_, err := client.Charge("user-1", 50)
	require.Error(t, err)
}

func TestClientCharge_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // адрес гарантированно не слушается

	client := payment.NewClient(srv.URL, nil)
	_, err := client.Charge("user-1", 50)
	require.Error(t, err)
}

func TestClientCharge_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := payment.NewClient(srv.URL, nil)
	_, err := client.Charge("user-1", 50)
	require.Error(t, err)
}
