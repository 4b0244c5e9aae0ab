package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shelfsync/models"
)

func TestHTTPRemoteAPI_Push_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/items", r.URL.Path)
		assert.Equal(t, "op-1", r.Header.Get("X-Operation-ID"))

		var req models.PushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "item-a", req.EntityID)
		assert.Equal(t, int64(0), req.BaseVersion)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PushResponse{EntityID: "item-a", NewVersion: 1})
	}))
	defer srv.Close()

	api := NewHTTPRemoteAPI(HTTPClientConfig{BaseURL: srv.URL})

	resp, err := api.Push(context.Background(), models.PushRequest{
		EntityType:  models.EntityItem,
		EntityID:    "item-a",
		Operation:   models.OpCreate,
		Payload:     json.RawMessage(`{"quantity":5}`),
		OperationID: "op-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.NewVersion)
}

func TestHTTPRemoteAPI_Push_UpdateUsesEntityPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/items/item-a", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PushResponse{EntityID: "item-a", NewVersion: 3})
	}))
	defer srv.Close()

	api := NewHTTPRemoteAPI(HTTPClientConfig{BaseURL: srv.URL})

	resp, err := api.Push(context.Background(), models.PushRequest{
		EntityType:  models.EntityItem,
		EntityID:    "item-a",
		Operation:   models.OpUpdate,
		Payload:     json.RawMessage(`{"quantity":9}`),
		BaseVersion: 2,
		OperationID: "op-2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.NewVersion)
}

func TestHTTPRemoteAPI_Push_DeleteCarriesBaseVersionQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/categories/cat-1", r.URL.Path)
		assert.Equal(t, "4", r.URL.Query().Get("base_version"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PushResponse{EntityID: "cat-1", NewVersion: 5})
	}))
	defer srv.Close()

	api := NewHTTPRemoteAPI(HTTPClientConfig{BaseURL: srv.URL})

	resp, err := api.Push(context.Background(), models.PushRequest{
		EntityType:  models.EntityCategory,
		EntityID:    "cat-1",
		Operation:   models.OpDelete,
		BaseVersion: 4,
		OperationID: "op-3",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.NewVersion)
}

func TestHTTPRemoteAPI_Push_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "409 maps to version conflict", status: http.StatusConflict, want: ErrVersionConflict},
		{name: "500 maps to server rejection", status: http.StatusInternalServerError, want: ErrServerRejection},
		{name: "400 maps to server rejection", status: http.StatusBadRequest, want: ErrServerRejection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			api := NewHTTPRemoteAPI(HTTPClientConfig{BaseURL: srv.URL})

			_, err := api.Push(context.Background(), models.PushRequest{
				EntityType:  models.EntityItem,
				EntityID:    "item-a",
				Operation:   models.OpUpdate,
				BaseVersion: 1,
				OperationID: "op-1",
			})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHTTPRemoteAPI_Push_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing is listening any more

	api := NewHTTPRemoteAPI(HTTPClientConfig{BaseURL: srv.URL, Timeout: time.Second})

	_, err := api.Push(context.Background(), models.PushRequest{
		EntityType: models.EntityItem,
		EntityID:   "item-a",
		Operation:  models.OpCreate,
	})
	require.ErrorIs(t, err, ErrNetwork)
}

func TestHTTPRemoteAPI_Fetch(t *testing.T) {
	updatedAt := time.Date(2026, 8, 1, 13, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/items/item-a", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.RemoteRecord{
			EntityID:  "item-a",
			Payload:   json.RawMessage(`{"quantity":8}`),
			Version:   4,
			UpdatedAt: updatedAt,
		})
	}))
	defer srv.Close()

	api := NewHTTPRemoteAPI(HTTPClientConfig{BaseURL: srv.URL})

	remote, err := api.Fetch(context.Background(), models.EntityItem, "item-a")
	require.NoError(t, err)
	assert.Equal(t, models.EntityItem, remote.EntityType)
	assert.Equal(t, int64(4), remote.Version)
	assert.JSONEq(t, `{"quantity":8}`, string(remote.Payload))
	assert.True(t, remote.UpdatedAt.Equal(updatedAt))
}

func TestHTTPRemoteAPI_Fetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "entity not found", http.StatusNotFound)
	}))
	defer srv.Close()

	api := NewHTTPRemoteAPI(HTTPClientConfig{BaseURL: srv.URL})

	_, err := api.Fetch(context.Background(), models.EntityItem, "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
