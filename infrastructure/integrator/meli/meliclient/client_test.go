package meliclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	melidomain "github.com/vfg2006/meli-sales-api/infrastructure/integrator/meli/domain"
	"github.com/vfg2006/meli-sales-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *MeliClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newClient(config.Meli{
		APIURL:       server.URL,
		AuthURL:      "https://auth.example.com",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://app.example.com/integration/oauth/callback",
	}, server.Client())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestMeliClient_AuthCodeURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	raw := client.AuthCodeURL("state-123")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "auth.example.com", parsed.Host)
	assert.Equal(t, "/authorization", parsed.Path)
	assert.Equal(t, "code", parsed.Query().Get("response_type"))
	assert.Equal(t, "client-id", parsed.Query().Get("client_id"))
	assert.Equal(t, "state-123", parsed.Query().Get("state"))
	assert.Equal(t, "https://app.example.com/integration/oauth/callback", parsed.Query().Get("redirect_uri"))
}

func TestMeliClient_ExchangeCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "TG-abc", r.PostForm.Get("code"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

		writeJSON(w, http.StatusOK, `{
			"access_token": "APP_USR-1",
			"token_type": "Bearer",
			"expires_in": 21600,
			"scope": "offline_access read",
			"user_id": 123456,
			"refresh_token": "TG-refresh"
		}`)
	})

	grant, err := client.ExchangeCode(context.Background(), "TG-abc")
	require.NoError(t, err)

	assert.Equal(t, "APP_USR-1", grant.AccessToken)
	assert.Equal(t, "TG-refresh", grant.RefreshToken)
	assert.Equal(t, int64(123456), grant.UserID)
	assert.Equal(t, "offline_access read", grant.Scope)
	assert.Equal(t, int64(21600), grant.ExpiresIn)
}

func TestMeliClient_RefreshToken(t *testing.T) {
	t.Run("Renovação envia o refresh token armazenado", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
			assert.Equal(t, "TG-old", r.PostForm.Get("refresh_token"))

			writeJSON(w, http.StatusOK, `{"access_token":"APP_USR-2","expires_in":21600,"refresh_token":"TG-new"}`)
		})

		grant, err := client.RefreshToken(context.Background(), "TG-old")
		require.NoError(t, err)
		assert.Equal(t, "APP_USR-2", grant.AccessToken)
		assert.Equal(t, "TG-new", grant.RefreshToken)
		assert.Equal(t, int64(21600), grant.ExpiresIn)
	})

	t.Run("Resposta não-2xx vira APIError com status e corpo", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, `{"error":"invalid_grant","message":"invalid refresh_token"}`)
		})

		_, err := client.RefreshToken(context.Background(), "TG-revoked")

		var apiErr *melidomain.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "invalid_grant")
	})
}

func TestMeliClient_GetOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders/2000001", r.URL.Path)
		assert.Equal(t, "Bearer APP_USR-1", r.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, `{
			"id": 2000001,
			"date_created": "2024-05-01T10:00:00.000-03:00",
			"total_amount": 150.5,
			"buyer": {"id": "777", "nickname": "COMPRADOR"},
			"order_items": [{"item": {"id": "MLA1", "title": "Caneca"}, "quantity": 2, "unit_price": 75.25}],
			"shipping": {"id": 4000001}
		}`)
	})

	order, err := client.GetOrder(context.Background(), "APP_USR-1", 2000001)
	require.NoError(t, err)

	assert.Equal(t, int64(2000001), order.ID.Int64())
	assert.Equal(t, int64(777), order.BuyerID())
	assert.Equal(t, int64(4000001), order.ShipmentID())
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, "MLA1", order.OrderItems[0].Item.ID.String())
}

func TestMeliClient_GetShipmentNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipments/99", r.URL.Path)
		writeJSON(w, http.StatusNotFound, `{"message":"not_found"}`)
	})

	shipment, err := client.GetShipment(context.Background(), "APP_USR-1", 99)
	assert.Nil(t, shipment)

	var apiErr *melidomain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestMeliClient_SearchOrders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/search", r.URL.Path)
		assert.Equal(t, "123456", r.URL.Query().Get("seller"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "date_desc", r.URL.Query().Get("sort"))

		writeJSON(w, http.StatusOK, `{"results":[{"id":1},{"id":2}],"paging":{"total":2,"offset":0,"limit":20}}`)
	})

	result, err := client.SearchOrders(context.Background(), "APP_USR-1", 123456, 20)
	require.NoError(t, err)
	assert.Len(t, result.Results, 2)
	assert.Equal(t, 2, result.Paging.Total)
}
