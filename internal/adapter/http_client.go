package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/shelfsync/models"
)

// HTTPClientConfig configures the resty-backed [RemoteAPI] implementation.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRemoteAPI struct {
	client *resty.Client
}

// NewHTTPRemoteAPI constructs a [RemoteAPI] speaking the inventory REST
// contract:
//
//	POST   /api/{items|categories}                create
//	PUT    /api/{items|categories}/{id}           update
//	DELETE /api/{items|categories}/{id}           delete
//	GET    /api/{items|categories}/{id}           fetch
//
// Mutations carry the base version in the body and the operation id in the
// X-Operation-ID header.
func NewHTTPRemoteAPI(cfg HTTPClientConfig) RemoteAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteAPI{client: cli}
}

func collectionPath(entityType models.EntityType) string {
	if entityType == models.EntityCategory {
		return "/api/categories"
	}
	return "/api/items"
}

func (h *httpRemoteAPI) Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Operation-ID", req.OperationID).
		SetBody(req)

	var (
		resp *resty.Response
		err  error
	)

	switch req.Operation {
	case models.OpCreate:
		resp, err = r.Post(collectionPath(req.EntityType))
	case models.OpUpdate:
		resp, err = r.Put(collectionPath(req.EntityType) + "/" + req.EntityID)
	case models.OpDelete:
		resp, err = r.
			SetQueryParam("base_version", strconv.FormatInt(req.BaseVersion, 10)).
			Delete(collectionPath(req.EntityType) + "/" + req.EntityID)
	default:
		return models.PushResponse{}, fmt.Errorf("unknown operation %q", req.Operation)
	}

	if err != nil {
		// resty surfaces timeouts and transport failures here; both are
		// retryable network errors for the drain cycle
		return models.PushResponse{}, fmt.Errorf("%w: push %s %s: %w", ErrNetwork, req.Operation, req.EntityID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	var pushResp models.PushResponse
	if resp.StatusCode() != http.StatusNoContent {
		if err = json.Unmarshal(resp.Body(), &pushResp); err != nil {
			return models.PushResponse{}, fmt.Errorf("%w: decode push response: %w", ErrServerRejection, err)
		}
	}
	if pushResp.EntityID == "" {
		pushResp.EntityID = req.EntityID
	}

	return pushResp, nil
}

func (h *httpRemoteAPI) Fetch(ctx context.Context, entityType models.EntityType, entityID string) (models.RemoteRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(collectionPath(entityType) + "/" + entityID)
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: fetch %s/%s: %w", ErrNetwork, entityType, entityID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteRecord{}, err
	}

	var remote models.RemoteRecord
	if err = json.Unmarshal(resp.Body(), &remote); err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: decode remote record: %w", ErrServerRejection, err)
	}
	if remote.EntityType == "" {
		remote.EntityType = entityType
	}

	return remote, nil
}
