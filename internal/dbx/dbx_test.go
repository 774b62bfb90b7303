package dbx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromWithoutTransaction(t *testing.T) {
	db := &sql.DB{}
	got := From(context.Background(), db)
	assert.Same(t, db, got)
}

func TestFromIgnoresForeignContextValues(t *testing.T) {
	db := &sql.DB{}
	type otherKey struct{}
	ctx := context.WithValue(context.Background(), otherKey{}, "x")
	assert.Same(t, db, From(ctx, db))
}
