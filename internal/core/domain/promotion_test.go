package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/cineticket/internal/core/domain"
)

func TestComputeDiscount_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		subtotal int64
		promo    *domain.Promotion
		discount int64
		total    int64
	}{
		{"percent on two seats", 400000, &domain.Promotion{DiscountType: domain.DiscountPercent, Value: 2}, 8000, 392000},
		{"fixed on one seat", 200000, &domain.Promotion{DiscountType: domain.DiscountFixed, Value: 10000}, 10000, 190000},
		{"fixed above subtotal", 50000, &domain.Promotion{DiscountType: domain.DiscountFixed, Value: 100000}, 50000, 0},
		{"no promotion", 300000, nil, 0, 300000},
		{"percent over hundred", 1000, &domain.Promotion{DiscountType: domain.DiscountPercent, Value: 150}, 1000, 0},
		{"negative fixed", 1000, &domain.Promotion{DiscountType: domain.DiscountFixed, Value: -5}, 0, 1000},
		{"empty subtotal", 0, &domain.Promotion{DiscountType: domain.DiscountFixed, Value: 5}, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := domain.ComputeDiscount(tc.subtotal, tc.promo)
			assert.Equal(t, tc.discount, d)
			assert.Equal(t, tc.total, domain.FinalTotal(tc.subtotal, d))
		})
	}
}

func TestComputeDiscount_PercentRoundsAndClamps(t *testing.T) {
	for _, s := range []int64{1, 7, 999, 12345, 200000} {
		for _, v := range []float64{0, 0.5, 2, 33.3, 50, 100} {
			p := &domain.Promotion{DiscountType: domain.DiscountPercent, Value: v}
			d := domain.ComputeDiscount(s, p)
			assert.GreaterOrEqual(t, d, int64(0))
			assert.LessOrEqual(t, d, s)
			assert.InDelta(t, float64(s)*v/100, float64(d), 0.5)
		}
	}
}

func TestComputeDiscount_FixedIsMin(t *testing.T) {
	for _, s := range []int64{0, 5000, 10000, 20000} {
		p := &domain.Promotion{DiscountType: domain.DiscountFixed, Value: 10000}
		assert.Equal(t, min(int64(10000), s), domain.ComputeDiscount(s, p))
	}
}

func TestFinalTotal_NeverNegative(t *testing.T) {
	assert.Equal(t, int64(0), domain.FinalTotal(100, 500))
	assert.Equal(t, int64(400), domain.FinalTotal(500, 100))
	assert.Equal(t, int64(400000), domain.Subtotal(2, 200000))
}

func TestPromotion_UsableAt(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	valid := domain.Promotion{
		Status:    domain.PromotionApproved,
		IsActive:  true,
		StartDate: now.Add(-24 * time.Hour),
		EndDate:   now.Add(24 * time.Hour),
	}
	assert.True(t, valid.UsableAt(now))

	expired := valid
	expired.EndDate = now.Add(-time.Minute)
	assert.False(t, expired.UsableAt(now))

	inactive := valid
	inactive.IsActive = false
	assert.False(t, inactive.UsableAt(now))

	pendingApproval := valid
	pendingApproval.Status = "pending"
	assert.False(t, pendingApproval.UsableAt(now))

	notStarted := valid
	notStarted.StartDate = now.Add(time.Hour)
	assert.False(t, notStarted.UsableAt(now))

	usedUp := valid
	usedUp.MaxUsage, usedUp.UsageCount = 10, 10
	assert.False(t, usedUp.UsableAt(now))

	var nilPromo *domain.Promotion
	assert.False(t, nilPromo.UsableAt(now))
}

func TestClampDiscount(t *testing.T) {
	assert.Equal(t, int64(0), domain.ClampDiscount(100, -5))
	assert.Equal(t, int64(40), domain.ClampDiscount(100, 40))
	assert.Equal(t, int64(100), domain.ClampDiscount(100, 250))
	assert.Equal(t, int64(0), domain.ClampDiscount(0, 10))
}
