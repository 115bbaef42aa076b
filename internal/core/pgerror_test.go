// AngelaMos | 2026
// pgerror_test.go

package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorClassification(t *testing.T) {
	t.Parallel()

	wrap := func(code string) error {
		return fmt.Errorf("create product: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name       string
		err        error
		duplicate  bool
		foreignKey bool
		outOfRange bool
	}{
		{name: "unique violation", err: wrap("23505"), duplicate: true},
		{name: "foreign key violation", err: wrap("23503"), foreignKey: true},
		{name: "numeric overflow", err: wrap("22003"), outOfRange: true},
		{name: "other pg error", err: wrap("40001")},
		{name: "plain error", err: errors.New("connection reset")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.duplicate, IsDuplicateKeyError(tt.err))
			assert.Equal(t, tt.foreignKey, IsForeignKeyError(tt.err))
			assert.Equal(t, tt.outOfRange, IsOutOfRangeError(tt.err))
		})
	}
}
