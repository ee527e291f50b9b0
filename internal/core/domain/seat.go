package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
)

const (
	SeatFirstRow = 4
	SeatLastRow  = 24
)

// SeatColumns lists the cabin columns; A-C sit left of the aisle and D-F right of it.
var SeatColumns = []string{"A", "B", "C", "D", "E", "F"}

// Seat is a normalised seat label such as "C12". The zero value means no seat.
type Seat string

// SeatRow is one row of the cabin as shown on the seat map.
type SeatRow struct {
	Row   int    `json:"row"`
	Left  []Seat `json:"left"`
	Right []Seat `json:"right"`
}

// ParseSeat accepts "C12" or "12C" (any case) and returns the normalised label.
func ParseSeat(label string) (Seat, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if len(s) < 2 {
		return "", fmt.Errorf("%w: invalid seat '%s'", apperrors.ErrValidation, label)
	}

	var column, rowPart string
	switch {
	case s[0] >= 'A' && s[0] <= 'Z':
		column, rowPart = s[:1], s[1:]
	case s[len(s)-1] >= 'A' && s[len(s)-1] <= 'Z':
		column, rowPart = s[len(s)-1:], s[:len(s)-1]
	default:
		return "", fmt.Errorf("%w: invalid seat '%s'", apperrors.ErrValidation, label)
	}

	row, err := strconv.Atoi(rowPart)
	if err != nil || rowPart[0] == '+' || rowPart[0] == '-' {
		return "", fmt.Errorf("%w: invalid seat row in '%s'", apperrors.ErrValidation, label)
	}
	if row < SeatFirstRow || row > SeatLastRow {
		return "", fmt.Errorf("%w: seat row %d outside %d-%d", apperrors.ErrValidation, row, SeatFirstRow, SeatLastRow)
	}
	if !isSeatColumn(column) {
		return "", fmt.Errorf("%w: seat column '%s' does not exist", apperrors.ErrValidation, column)
	}
	return Seat(column + strconv.Itoa(row)), nil
}

func isSeatColumn(column string) bool {
	for _, c := range SeatColumns {
		if c == column {
			return true
		}
	}
	return false
}

// SeatMap returns every row of the cabin from front to back.
func SeatMap() []SeatRow {
	rows := make([]SeatRow, 0, SeatLastRow-SeatFirstRow+1)
	for r := SeatFirstRow; r <= SeatLastRow; r++ {
		row := SeatRow{Row: r}
		for i, c := range SeatColumns {
			seat := Seat(c + strconv.Itoa(r))
			if i < len(SeatColumns)/2 {
				row.Left = append(row.Left, seat)
			} else {
				row.Right = append(row.Right, seat)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
