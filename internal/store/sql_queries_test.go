package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shelfsync/models"
)

func TestBuildQueryRecords(t *testing.T) {
	deleted := true
	status := models.RecordUnconfirmed
	after := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   RecordFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no filter",
			filter:   RecordFilter{},
			wantSQL:  "WHERE entity_type = ? ORDER BY entity_id",
			wantArgs: []any{models.EntityItem},
		},
		{
			name:     "deleted filter",
			filter:   RecordFilter{Deleted: &deleted},
			wantSQL:  "WHERE entity_type = ? AND deleted = ? ORDER BY entity_id",
			wantArgs: []any{models.EntityItem, true},
		},
		{
			name:     "status filter",
			filter:   RecordFilter{Status: &status},
			wantSQL:  "WHERE entity_type = ? AND status = ? ORDER BY entity_id",
			wantArgs: []any{models.EntityItem, models.RecordUnconfirmed},
		},
		{
			name:     "time window",
			filter:   RecordFilter{UpdatedAfter: &after, UpdatedBefore: &before},
			wantSQL:  "WHERE entity_type = ? AND updated_at > ? AND updated_at < ? ORDER BY entity_id",
			wantArgs: []any{models.EntityItem, after, before},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildQueryRecords(models.EntityItem, tt.filter)
			require.NoError(t, err)
			assert.Contains(t, query, "FROM records")
			assert.Contains(t, query, tt.wantSQL)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildPurgeOlderThan(t *testing.T) {
	cutoff := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildPurgeOlderThan("activity_log", cutoff)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM activity_log WHERE created_at < ?", query)
	assert.Equal(t, []any{cutoff}, args)
}
