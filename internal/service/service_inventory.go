package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/internal/validators"
	"github.com/MKhiriev/shelfsync/models"
)

// writeOverhead pads the quota estimate of a write with the queue entry and
// index cost that accompanies the payload itself.
const writeOverhead = 512

type inventoryService struct {
	records   store.RecordRepository
	activity  store.ActivityRepository
	optimizer StorageOptimizer
	validator validators.Validator
	log       *logger.Logger
}

func NewInventoryService(records store.RecordRepository, activity store.ActivityRepository, optimizer StorageOptimizer, log *logger.Logger) InventoryService {
	return &inventoryService{
		records:   records,
		activity:  activity,
		optimizer: optimizer,
		validator: validators.NewInventoryValidator(),
		log:       log,
	}
}

func (s *inventoryService) PutItem(ctx context.Context, item models.Item) (models.Record, error) {
	if err := s.validator.Validate(ctx, item); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return s.put(ctx, models.EntityItem, item.ID, item)
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (models.Item, error) {
	var item models.Item
	if err := s.get(ctx, models.EntityItem, id, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (s *inventoryService) ListItems(ctx context.Context) ([]models.Item, error) {
	records, err := s.list(ctx, models.EntityItem)
	if err != nil {
		return nil, err
	}

	items := make([]models.Item, 0, len(records))
	for _, rec := range records {
		var item models.Item
		if err = json.Unmarshal(rec.Payload, &item); err != nil {
			return nil, fmt.Errorf("decode item %s: %w", rec.EntityID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	return s.delete(ctx, models.EntityItem, id)
}

func (s *inventoryService) PutCategory(ctx context.Context, category models.Category) (models.Record, error) {
	if err := s.validator.Validate(ctx, category); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	return s.put(ctx, models.EntityCategory, category.ID, category)
}

func (s *inventoryService) GetCategory(ctx context.Context, id string) (models.Category, error) {
	var category models.Category
	if err := s.get(ctx, models.EntityCategory, id, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *inventoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	records, err := s.list(ctx, models.EntityCategory)
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(records))
	for _, rec := range records {
		var category models.Category
		if err = json.Unmarshal(rec.Payload, &category); err != nil {
			return nil, fmt.Errorf("decode category %s: %w", rec.EntityID, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *inventoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.delete(ctx, models.EntityCategory, id)
}

// put stores the full entity value and enqueues only the fields that
// actually changed, so later conflict detection compares real edits rather
// than the whole payload.
func (s *inventoryService) put(ctx context.Context, entityType models.EntityType, id string, entity any) (models.Record, error) {
	payload, err := json.Marshal(entity)
	if err != nil {
		return models.Record{}, fmt.Errorf("encode %s payload: %w", entityType, err)
	}

	ok, err := s.optimizer.HasEnoughSpace(ctx, int64(len(payload))+writeOverhead)
	if err != nil {
		return models.Record{}, err
	}
	if !ok {
		return models.Record{}, ErrStorageQuotaExceeded
	}

	changed, unchanged, err := s.changedFields(ctx, entityType, id, payload)
	if err != nil {
		return models.Record{}, err
	}
	if unchanged != nil {
		// the write is a no-op, keep the record and queue as they are
		return *unchanged, nil
	}

	rec, entry, err := s.records.PutAndEnqueue(ctx, entityType, id, payload, changed)
	if err != nil {
		return models.Record{}, fmt.Errorf("store %s: %w", entityType, err)
	}

	s.appendActivity(ctx, entityType, id, string(entry.Operation), fmt.Sprintf("local version %d queued", rec.LocalVersion))
	return rec, nil
}

func (s *inventoryService) get(ctx context.Context, entityType models.EntityType, id string, dst any) error {
	rec, err := s.records.Get(ctx, entityType, id)
	if err != nil {
		return err
	}
	if rec.Deleted {
		return store.ErrRecordNotFound
	}
	if err = json.Unmarshal(rec.Payload, dst); err != nil {
		return fmt.Errorf("decode %s %s: %w", entityType, id, err)
	}
	return nil
}

func (s *inventoryService) list(ctx context.Context, entityType models.EntityType) ([]models.Record, error) {
	notDeleted := false
	records, err := s.records.Query(ctx, entityType, store.RecordFilter{Deleted: &notDeleted})
	if err != nil {
		return nil, fmt.Errorf("query %s records: %w", entityType, err)
	}
	return records, nil
}

func (s *inventoryService) delete(ctx context.Context, entityType models.EntityType, id string) error {
	if _, err := s.records.SoftDeleteAndEnqueue(ctx, entityType, id); err != nil {
		return err
	}
	s.appendActivity(ctx, entityType, id, "delete", "tombstoned, delete queued")
	return nil
}

// changedFields diffs the new payload against the current record. The
// second return is non-nil when nothing changed.
func (s *inventoryService) changedFields(ctx context.Context, entityType models.EntityType, id string, payload json.RawMessage) (json.RawMessage, *models.Record, error) {
	current, err := s.records.Get(ctx, entityType, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			// fresh create: every field is a change
			return payload, nil, nil
		}
		return nil, nil, err
	}

	oldFields, err := current.Fields()
	if err != nil {
		return nil, nil, fmt.Errorf("decode stored payload: %w", err)
	}

	newFields := make(map[string]any)
	if err = json.Unmarshal(payload, &newFields); err != nil {
		return nil, nil, fmt.Errorf("decode new payload: %w", err)
	}

	changed := make(map[string]any)
	for field, value := range newFields {
		if !valuesEqual(oldFields[field], value) {
			changed[field] = value
		}
	}

	if len(changed) == 0 && !current.Deleted {
		return nil, &current, nil
	}

	out, err := json.Marshal(changed)
	if err != nil {
		return nil, nil, fmt.Errorf("encode changed fields: %w", err)
	}
	return out, nil, nil
}

func (s *inventoryService) appendActivity(ctx context.Context, entityType models.EntityType, id, action, detail string) {
	err := s.activity.Append(ctx, models.ActivityEntry{
		EntityType: entityType,
		EntityID:   id,
		Action:     action,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn().Err(err).
			Str("func", "inventoryService.appendActivity").
			Msg("failed to append activity entry")
	}
}
