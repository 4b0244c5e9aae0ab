// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/models"
)

const operationIDHeader = "X-Operation-ID"

func (h *Handler) push(entityType models.EntityType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		req, err := decodePushRequest(r, entityType)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp, replayed, err := h.store.apply(req)
		switch {
		case errors.Is(err, errVersionMismatch):
			http.Error(w, err.Error(), http.StatusConflict)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if replayed {
			log.Info().
				Str("operation_id", req.OperationID).
				Str("entity_id", req.EntityID).
				Msg("replayed recorded outcome for duplicate operation")
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *Handler) fetch(entityType models.EntityType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		rec, err := h.store.get(entityType, id)
		if errors.Is(err, errNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

// decodePushRequest builds the mutation from the request body, falling back
// to path, query, and header values so that bodiless deletes stay valid.
func decodePushRequest(r *http.Request, entityType models.EntityType) (models.PushRequest, error) {
	var req models.PushRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return models.PushRequest{}, err
	}
	if len(body) > 0 {
		if err = json.Unmarshal(body, &req); err != nil {
			return models.PushRequest{}, err
		}
	}

	req.EntityType = entityType
	if id := chi.URLParam(r, "id"); id != "" {
		req.EntityID = id
	}
	if opID := r.Header.Get(operationIDHeader); opID != "" {
		req.OperationID = opID
	}

	switch r.Method {
	case http.MethodPost:
		req.Operation = models.OpCreate
	case http.MethodPut:
		req.Operation = models.OpUpdate
	case http.MethodDelete:
		req.Operation = models.OpDelete
		if v := r.URL.Query().Get("base_version"); v != "" {
			base, pErr := strconv.ParseInt(v, 10, 64)
			if pErr != nil {
				return models.PushRequest{}, pErr
			}
			req.BaseVersion = base
		}
	}

	if req.EntityID == "" {
		return models.PushRequest{}, errors.New("entity id is required")
	}

	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
