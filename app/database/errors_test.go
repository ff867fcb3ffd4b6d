package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, MapError(nil))

	assert.ErrorIs(t, MapError(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, MapError(fmt.Errorf("scan: %w", sql.ErrNoRows)), ErrNotFound)

	unique := &pq.Error{Code: "23505"}
	assert.ErrorIs(t, MapError(unique), ErrConflict)

	foreignKey := &pq.Error{Code: "23503"}
	assert.ErrorIs(t, MapError(foreignKey), ErrClassHasStudents)

	// Other driver errors pass through untouched.
	other := &pq.Error{Code: "42601"}
	assert.Equal(t, error(other), MapError(other))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, MapError(plain))
}
