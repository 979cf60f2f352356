package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type taggedRow struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Hidden string `db:"-"`
	NoTag  string
	secret string `db:"secret"`
}

func TestStructTagValues(t *testing.T) {
	row := taggedRow{ID: "abc", Name: "Jane", secret: "x"}

	cols := StructTagValues(row)
	assert.Equal(t, []string{"id", "name"}, cols)

	// pointer input behaves the same
	assert.Equal(t, cols, StructTagValues(&row))
}

func TestStructToMap(t *testing.T) {
	row := taggedRow{ID: "abc", Name: "Jane", Hidden: "nope", NoTag: "nope"}

	m := StructToMap(&row)
	assert.Equal(t, map[string]any{
		"id":   "abc",
		"name": "Jane",
	}, m)
}

func TestStructTagValuesPanicsOnNonStruct(t *testing.T) {
	assert.Panics(t, func() {
		StructTagValues("not a struct")
	})
}

func TestErrorWrapOrNil(t *testing.T) {
	assert.NoError(t, ErrorWrapOrNil(nil, "ignored"))

	base := errors.New("boom")
	assert.Equal(t, base, ErrorWrapOrNil(base, ""))

	wrapped := ErrorWrapOrNil(base, "saving row")
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "saving row: boom", wrapped.Error())
}

func TestNanoID(t *testing.T) {
	id := NanoID()
	assert.Len(t, id, NanoidSize)
	assert.NotEqual(t, id, NanoID())

	assert.Len(t, NanoIDSize(8), 8)
	assert.Len(t, NanoIDSize(0), NanoidSize)
}
