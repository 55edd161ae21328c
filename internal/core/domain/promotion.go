package domain

import (
	"math"
	"time"
)

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

const PromotionApproved = "approved"

type Promotion struct {
	ID           string
	Code         string
	Name         string
	Description  string
	DiscountType DiscountType
	Value        float64
	StartDate    time.Time
	EndDate      time.Time
	IsActive     bool
	Status       string
	UsageCount   int
	MaxUsage     int
}

// UsableAt reports whether the promotion may be applied at now: approved,
// active, not yet expired, started, and under its usage cap.
func (p *Promotion) UsableAt(now time.Time) bool {
	if p == nil || p.Status != PromotionApproved || !p.IsActive {
		return false
	}
	if !p.EndDate.After(now) {
		return false
	}
	if !p.StartDate.IsZero() && p.StartDate.After(now) {
		return false
	}
	if p.MaxUsage > 0 && p.UsageCount >= p.MaxUsage {
		return false
	}
	return true
}

func Subtotal(seatCount int, ticketPrice int64) int64 {
	return int64(seatCount) * ticketPrice
}

// ComputeDiscount returns the amount p takes off subtotal. Percent values are
// rounded to the nearest currency unit; the result is always within
// [0, subtotal].
func ComputeDiscount(subtotal int64, p *Promotion) int64 {
	if p == nil || subtotal <= 0 {
		return 0
	}
	var d int64
	switch p.DiscountType {
	case DiscountPercent:
		d = int64(math.Round(float64(subtotal) * p.Value / 100))
	default:
		d = int64(math.Round(p.Value))
	}
	return ClampDiscount(subtotal, d)
}

// ClampDiscount bounds an already computed discount to [0, subtotal].
func ClampDiscount(subtotal, discount int64) int64 {
	if subtotal <= 0 || discount < 0 {
		return 0
	}
	return min(discount, subtotal)
}

func FinalTotal(subtotal, discount int64) int64 {
	if t := subtotal - discount; t > 0 {
		return t
	}
	return 0
}
