// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/anything-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertCollectionQuery_ColumnsAndArgs(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	c := models.Collection{
		ID:           "c1",
		Title:        "Groceries",
		Symbol:       "cart",
		TemplateData: []byte(`{"title":"Groceries"}`),
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	query, args, err := buildInsertCollectionQuery(newBuilder(sq.Question), c)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into collections")
	for _, col := range collectionColumns {
		assert.Contains(t, q, col)
	}
	require.Len(t, args, len(collectionColumns))
	assert.Equal(t, "c1", args[0])
	assert.Equal(t, `{"title":"Groceries"}`, args[4])
	assert.Equal(t, time.UTC, args[5].(time.Time).Location())
}

func Test_buildInsertItemQuery_NilLastExecutedAt(t *testing.T) {
	item := models.Item{ID: "i1", CollectionID: "c1", PayloadData: []byte(`{"values":{}}`)}

	_, args, err := buildInsertItemQuery(newBuilder(sq.Question), item)
	require.NoError(t, err)

	require.Len(t, args, len(itemColumns))
	assert.Nil(t, args[5])
}

func Test_buildSelectCollectionsQuery_Filter(t *testing.T) {
	tests := []struct {
		name      string
		ids       []string
		wantWhere bool
		wantArgs  int
	}{
		{name: "all", ids: nil, wantWhere: false, wantArgs: 0},
		{name: "by ids", ids: []string{"a", "b"}, wantWhere: true, wantArgs: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectCollectionsQuery(newBuilder(sq.Dollar), tt.ids...)
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.Equal(t, tt.wantWhere, strings.Contains(q, "where"))
			assert.Contains(t, q, "order by created_at, id")
			assert.Len(t, args, tt.wantArgs)
			if tt.wantWhere {
				assert.Contains(t, query, "$1")
			}
		})
	}
}

func Test_buildSelectItemsQuery_ByCollection(t *testing.T) {
	query, args, err := buildSelectItemsQuery(newBuilder(sq.Question), "c1")
	require.NoError(t, err)

	assert.Contains(t, strings.ToLower(query), "where collection_id = ?")
	assert.Equal(t, []any{"c1"}, args)
}

func Test_buildDeleteQueries(t *testing.T) {
	b := newBuilder(sq.Question)

	query, args, err := buildDeleteByIDsQuery(b, itemsTable, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM items WHERE id IN (?,?)", query)
	assert.Equal(t, []any{"x", "y"}, args)

	query, args, err = buildDeleteAllQuery(b, collectionsTable)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM collections", query)
	assert.Empty(t, args)
}
