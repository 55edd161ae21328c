package domain

import (
	"fmt"
	"sort"
	"strconv"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatPending   SeatStatus = "pending"
	SeatOccupied  SeatStatus = "occupied"
)

const (
	GridRows    = 8
	GridColumns = 8
)

type Seat struct {
	ID     string
	Status SeatStatus
	VIP    bool
}

// SeatID builds an identifier such as "F7" from a zero-based row and a
// one-based column.
func SeatID(row, col int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(row), col)
}

func ParseSeatID(id string) (row, col int, err error) {
	if len(id) < 2 {
		return 0, 0, fmt.Errorf("invalid seat id %q", id)
	}
	row = int(id[0] - 'A')
	if row < 0 || row >= GridRows {
		return 0, 0, fmt.Errorf("invalid seat row in %q", id)
	}
	col, err = strconv.Atoi(id[1:])
	if err != nil || col < 1 || col > GridColumns {
		return 0, 0, fmt.Errorf("invalid seat column in %q", id)
	}
	return row, col, nil
}

func AllSeatIDs() []string {
	ids := make([]string, 0, GridRows*GridColumns)
	for r := 0; r < GridRows; r++ {
		for c := 1; c <= GridColumns; c++ {
			ids = append(ids, SeatID(r, c))
		}
	}
	return ids
}

// SeatStatusFromPayment derives a seat status from the payment status of the
// booking holding it.
func SeatStatusFromPayment(s PaymentStatus) SeatStatus {
	switch s {
	case PaymentCancelled:
		return SeatAvailable
	case PaymentPending:
		return SeatPending
	default:
		return SeatOccupied
	}
}

// SeatMap is the reconciled state of the grid for one screening.
type SeatMap struct {
	seats map[string]Seat
}

func NewSeatMap(known []Seat) *SeatMap {
	m := &SeatMap{seats: make(map[string]Seat, GridRows*GridColumns)}
	for _, id := range AllSeatIDs() {
		m.seats[id] = Seat{ID: id, Status: SeatAvailable}
	}
	for _, s := range known {
		cur, ok := m.seats[s.ID]
		if !ok {
			continue
		}
		// a seat reported twice keeps its most restrictive status
		if rank(s.Status) >= rank(cur.Status) {
			cur.Status = s.Status
		}
		cur.VIP = cur.VIP || s.VIP
		m.seats[s.ID] = cur
	}
	return m
}

func rank(s SeatStatus) int {
	switch s {
	case SeatOccupied:
		return 2
	case SeatPending:
		return 1
	}
	return 0
}

func (m *SeatMap) Seat(id string) (Seat, bool) {
	s, ok := m.seats[id]
	return s, ok
}

func (m *SeatMap) Occupied(id string) bool {
	s, ok := m.seats[id]
	return ok && s.Status != SeatAvailable
}

func (m *SeatMap) OccupiedIDs() []string {
	var ids []string
	for id, s := range m.seats {
		if s.Status != SeatAvailable {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Rows returns the grid row by row, columns ascending.
func (m *SeatMap) Rows() [][]Seat {
	rows := make([][]Seat, GridRows)
	for r := 0; r < GridRows; r++ {
		rows[r] = make([]Seat, 0, GridColumns)
		for c := 1; c <= GridColumns; c++ {
			rows[r] = append(rows[r], m.seats[SeatID(r, c)])
		}
	}
	return rows
}
