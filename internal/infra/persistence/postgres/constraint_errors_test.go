package postgres

import (
	"testing"

	"accounts/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped gorm duplicated key", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), want: true},
		{
			name: "postgres message",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`),
			want: true,
		},
		{name: "sqlstate only", err: errors.New("SQLSTATE 23505"), want: true},
		{name: "not null violation", err: errors.New("null value in column (SQLSTATE 23502)"), want: false},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}
