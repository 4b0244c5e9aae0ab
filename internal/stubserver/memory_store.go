// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/shelfsync/models"
)

var (
	errVersionMismatch = errors.New("base version does not match current version")
	errNotFound        = errors.New("entity not found")
)

// memoryStore holds the backend's authoritative state. Every accepted
// mutation is recorded under its (entity, operation id) pair so that
// at-least-once resends replay the original outcome instead of applying the
// mutation twice.
type memoryStore struct {
	mu       sync.Mutex
	records  map[string]models.RemoteRecord
	outcomes map[string]models.PushResponse
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		records:  make(map[string]models.RemoteRecord),
		outcomes: make(map[string]models.PushResponse),
	}
}

func recordKey(entityType models.EntityType, entityID string) string {
	return string(entityType) + "/" + entityID
}

func outcomeKey(entityType models.EntityType, entityID, operationID string) string {
	return recordKey(entityType, entityID) + "/" + operationID
}

// apply runs one mutation against the store. The boolean reports whether
// the response was replayed from an earlier accepted operation.
func (s *memoryStore) apply(req models.PushRequest) (models.PushResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.OperationID != "" {
		if outcome, ok := s.outcomes[outcomeKey(req.EntityType, req.EntityID, req.OperationID)]; ok {
			return outcome, true, nil
		}
	}

	key := recordKey(req.EntityType, req.EntityID)
	current, exists := s.records[key]

	var (
		resp models.PushResponse
		err  error
	)

	switch req.Operation {
	case models.OpCreate:
		resp, err = s.applyUpsert(key, current, exists, req)
	case models.OpUpdate:
		if !exists || current.Deleted {
			return models.PushResponse{}, false, errVersionMismatch
		}
		resp, err = s.applyUpsert(key, current, exists, req)
	case models.OpDelete:
		resp, err = s.applyDelete(key, current, exists, req)
	default:
		return models.PushResponse{}, false, errors.New("unknown operation")
	}
	if err != nil {
		return models.PushResponse{}, false, err
	}

	if req.OperationID != "" {
		s.outcomes[outcomeKey(req.EntityType, req.EntityID, req.OperationID)] = resp
	}
	return resp, false, nil
}

func (s *memoryStore) applyUpsert(key string, current models.RemoteRecord, exists bool, req models.PushRequest) (models.PushResponse, error) {
	currentVersion := int64(0)
	if exists {
		currentVersion = current.Version
	}
	if req.BaseVersion != currentVersion {
		return models.PushResponse{}, errVersionMismatch
	}

	payload := req.Payload
	if exists && !current.Deleted && req.Operation == models.OpUpdate {
		// updates carry only the changed fields; merge them over the
		// current payload
		merged, err := mergeFields(current.Payload, req.Payload)
		if err != nil {
			return models.PushResponse{}, err
		}
		payload = merged
	}

	s.records[key] = models.RemoteRecord{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Payload:    payload,
		Version:    currentVersion + 1,
		UpdatedAt:  time.Now().UTC(),
		Deleted:    false,
	}

	return models.PushResponse{EntityID: req.EntityID, NewVersion: currentVersion + 1}, nil
}

func (s *memoryStore) applyDelete(key string, current models.RemoteRecord, exists bool, req models.PushRequest) (models.PushResponse, error) {
	if !exists || current.Deleted {
		// deleting what is already gone succeeds: the client's intent holds
		version := int64(0)
		if exists {
			version = current.Version
		}
		return models.PushResponse{EntityID: req.EntityID, NewVersion: version}, nil
	}
	if req.BaseVersion != current.Version {
		return models.PushResponse{}, errVersionMismatch
	}

	current.Deleted = true
	current.Version++
	current.UpdatedAt = time.Now().UTC()
	s.records[key] = current

	return models.PushResponse{EntityID: req.EntityID, NewVersion: current.Version}, nil
}

func (s *memoryStore) get(entityType models.EntityType, entityID string) (models.RemoteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[recordKey(entityType, entityID)]
	if !ok || rec.Deleted {
		return models.RemoteRecord{}, errNotFound
	}
	return rec, nil
}

func mergeFields(base, changed json.RawMessage) (json.RawMessage, error) {
	dst := make(map[string]any)
	if len(base) > 0 {
		if err := json.Unmarshal(base, &dst); err != nil {
			return nil, err
		}
	}
	src := make(map[string]any)
	if len(changed) > 0 {
		if err := json.Unmarshal(changed, &src); err != nil {
			return nil, err
		}
	}
	if err := mergo.Merge(&dst, src, mergo.WithOverride); err != nil {
		return nil, err
	}
	return json.Marshal(dst)
}
