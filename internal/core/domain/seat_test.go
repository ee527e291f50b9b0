package domain_test

import (
	"testing"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeat(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  domain.Seat
		valid bool
	}{
		{name: "column first", label: "C12", want: "C12", valid: true},
		{name: "row first", label: "12C", want: "C12", valid: true},
		{name: "lower case and spaces", label: " f24 ", want: "F24", valid: true},
		{name: "first row", label: "A4", want: "A4", valid: true},
		{name: "row before cabin", label: "A3", valid: false},
		{name: "row after cabin", label: "A25", valid: false},
		{name: "unknown column", label: "G10", valid: false},
		{name: "no column", label: "12", valid: false},
		{name: "signed row", label: "A+5", valid: false},
		{name: "empty", label: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseSeat(tt.label)
			if !tt.valid {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeatMap(t *testing.T) {
	rows := domain.SeatMap()
	require.Len(t, rows, domain.SeatLastRow-domain.SeatFirstRow+1)

	first := rows[0]
	assert.Equal(t, domain.SeatFirstRow, first.Row)
	assert.Equal(t, []domain.Seat{"A4", "B4", "C4"}, first.Left)
	assert.Equal(t, []domain.Seat{"D4", "E4", "F4"}, first.Right)
	assert.Equal(t, domain.SeatLastRow, rows[len(rows)-1].Row)
}
