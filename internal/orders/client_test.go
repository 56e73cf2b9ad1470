package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ventasCliente", r.URL.Path)
		assert.Equal(t, "loc-1", r.Header.Get("x-local-id"))

		var req CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cash_store", req.PaymentType)
		require.Len(t, req.Lines, 1)
		assert.Equal(t, "Empanada", req.Lines[0].Name)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"order-1","total":3000,"tipo_pago":"cash_store","cliente_email":"a@b.cl","productos":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	order, err := client.Create(context.Background(), CreateRequest{
		Lines:         []Line{{Name: "Empanada", Quantity: 2, UnitPrice: 1500, Subtotal: 3000}},
		Total:         3000,
		PaymentType:   "cash_store",
		CustomerEmail: "a@b.cl",
		LocationID:    "loc-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, 3000.0, order.Total)
}

func TestClientCreateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "stock agotado", http.StatusConflict)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Create(context.Background(), CreateRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http=409")
}

func TestClientHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ventasCliente", r.URL.Path)
		assert.Equal(t, "a@b.cl", r.URL.Query().Get("cliente_email"))
		w.Write([]byte(`[{"_id":"order-2","total":1500,"productos":[{"nombre":"Empanada","cantidad":1,"precio_unitario":1500,"subtotal":1500,"agregados":["Extra cheese"]}]}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	orders, err := client.History(context.Background(), "a@b.cl")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Lines, 1)
	require.Len(t, orders[0].Lines[0].AddOns, 1)
	assert.Equal(t, "Extra cheese", orders[0].Lines[0].AddOns[0].Name)
}

func TestClientDetailNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Detail(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ventasCliente/order-3", r.URL.Path)
		w.Write([]byte(`{"_id":"order-3","total":0,"productos":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	order, err := client.Detail(context.Background(), "order-3")
	require.NoError(t, err)
	assert.Equal(t, "order-3", order.ID)
}
