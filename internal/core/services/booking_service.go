package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/ports"
)

// SeatSelectionService opens seat selections for a screening and turns them
// into pending bookings.
type SeatSelectionService struct {
	catalog    *CatalogService
	seats      ports.SeatAPI
	bookings   ports.BookingAPI
	promotions ports.PromotionAPI
	auth       *AuthService
	now        ports.Clock
}

func NewSeatSelectionService(
	catalog *CatalogService,
	seats ports.SeatAPI,
	bookings ports.BookingAPI,
	promotions ports.PromotionAPI,
	auth *AuthService,
	now ports.Clock,
) *SeatSelectionService {
	if now == nil {
		now = time.Now
	}
	return &SeatSelectionService{
		catalog:    catalog,
		seats:      seats,
		bookings:   bookings,
		promotions: promotions,
		auth:       auth,
		now:        now,
	}
}

// Start loads everything the seat screen needs for screeningID. Occupancy,
// the screening with its movie and theater, and the active promotions are
// fetched concurrently. Promotions are optional: a failure there leaves the
// list empty.
func (s *SeatSelectionService) Start(ctx context.Context, screeningID string) (*SeatSelection, error) {
	sel := &SeatSelection{
		svc:      s,
		selected: make(map[string]struct{}),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		known, err := s.Occupancy(gctx, screeningID)
		if err != nil {
			return err
		}
		sel.seats = domain.NewSeatMap(known)
		return nil
	})

	g.Go(func() error {
		screening, err := s.catalog.Screening(gctx, screeningID)
		if err != nil {
			return fmt.Errorf("load screening %s: %w", screeningID, err)
		}
		sel.Screening = *screening

		inner, ictx := errgroup.WithContext(gctx)
		inner.Go(func() error {
			movie, err := s.catalog.Movie(ictx, screening.MovieID)
			if err != nil {
				return fmt.Errorf("load movie %s: %w", screening.MovieID, err)
			}
			sel.Movie = *movie
			return nil
		})
		inner.Go(func() error {
			theater, err := s.catalog.Theater(ictx, screening.TheaterID)
			if err != nil {
				return fmt.Errorf("load theater %s: %w", screening.TheaterID, err)
			}
			sel.Theater = *theater
			return nil
		})
		return inner.Wait()
	})

	g.Go(func() error {
		promotions, err := s.catalog.ActivePromotions(gctx)
		if err != nil {
			log.Warn().Err(err).Str("screening_id", screeningID).Msg("active promotions unavailable")
			return nil
		}
		sel.Promotions = promotions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sel, nil
}

// Occupancy returns the known seat states of a screening. The seat endpoint
// is asked first; when it is empty or fails, occupancy is rebuilt from the
// bookings of the screening.
func (s *SeatSelectionService) Occupancy(ctx context.Context, screeningID string) ([]domain.Seat, error) {
	seats, err := s.seats.GetScreeningSeats(ctx, screeningID)
	if err == nil && len(seats) > 0 {
		return seats, nil
	}
	if err != nil {
		log.Warn().Err(err).Str("screening_id", screeningID).Msg("seat status unavailable, using bookings")
	}

	bookings, berr := s.bookings.ListBookings(ctx, screeningID)
	if berr != nil {
		if err != nil {
			return nil, fmt.Errorf("load seat occupancy: %w", errors.Join(err, berr))
		}
		return nil, fmt.Errorf("load seat occupancy: %w", berr)
	}
	return seatsFromBookings(bookings), nil
}

func seatsFromBookings(bookings []domain.Booking) []domain.Seat {
	var seats []domain.Seat
	for _, b := range bookings {
		status := domain.SeatStatusFromPayment(b.Status)
		if status == domain.SeatAvailable {
			continue
		}
		for _, id := range b.Seats {
			seats = append(seats, domain.Seat{ID: strings.ToUpper(strings.TrimSpace(id)), Status: status})
		}
	}
	return seats
}

// validatePromotion asks the backend about code and re-checks the answer
// locally.
func (s *SeatSelectionService) validatePromotion(ctx context.Context, code string) (*domain.Promotion, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrPromotionCodeEmpty
	}
	p, err := s.promotions.ValidatePromotion(ctx, code)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPromotionInvalid, code)
		}
		return nil, err
	}
	if !p.UsableAt(s.now()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPromotionInvalid, code)
	}
	return p, nil
}

// SeatSelection is the state of one seat screen: the reconciled grid, the
// user's picks and at most one promotion. Selection is local until Checkout.
type SeatSelection struct {
	svc *SeatSelectionService

	Screening  domain.Screening
	Movie      domain.Movie
	Theater    domain.Theater
	Promotions []domain.Promotion

	mu        sync.Mutex
	seats     *domain.SeatMap
	selected  map[string]struct{}
	promotion *domain.Promotion
}

func (sel *SeatSelection) Seats() *domain.SeatMap {
	return sel.seats
}

// Toggle flips seat id in the selection and reports whether it is selected
// afterwards. Occupied, pending and unknown seats are left alone.
func (sel *SeatSelection) Toggle(id string) bool {
	id = strings.ToUpper(strings.TrimSpace(id))

	sel.mu.Lock()
	defer sel.mu.Unlock()

	if _, ok := sel.seats.Seat(id); !ok || sel.seats.Occupied(id) {
		return false
	}
	if _, ok := sel.selected[id]; ok {
		delete(sel.selected, id)
		return false
	}
	sel.selected[id] = struct{}{}
	return true
}

func (sel *SeatSelection) IsSelected(id string) bool {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	_, ok := sel.selected[strings.ToUpper(id)]
	return ok
}

func (sel *SeatSelection) Selected() []string {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	return sel.selectedLocked()
}

func (sel *SeatSelection) selectedLocked() []string {
	ids := make([]string, 0, len(sel.selected))
	for id := range sel.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (sel *SeatSelection) Clear() {
	sel.mu.Lock()
	sel.selected = make(map[string]struct{})
	sel.mu.Unlock()
}

func (sel *SeatSelection) Subtotal() int64 {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	return domain.Subtotal(len(sel.selected), sel.Screening.Price)
}

// Discount is computed from the current subtotal, so it follows every
// change of the selection.
func (sel *SeatSelection) Discount() int64 {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	return domain.ComputeDiscount(domain.Subtotal(len(sel.selected), sel.Screening.Price), sel.promotion)
}

func (sel *SeatSelection) Total() int64 {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	subtotal := domain.Subtotal(len(sel.selected), sel.Screening.Price)
	return domain.FinalTotal(subtotal, domain.ComputeDiscount(subtotal, sel.promotion))
}

// ApplyPromotion validates code and makes it the applied promotion,
// replacing any previous one. On failure the previous promotion stays.
func (sel *SeatSelection) ApplyPromotion(ctx context.Context, code string) (*domain.Promotion, error) {
	p, err := sel.svc.validatePromotion(ctx, code)
	if err != nil {
		return nil, err
	}
	sel.mu.Lock()
	sel.promotion = p
	sel.mu.Unlock()
	return p, nil
}

func (sel *SeatSelection) RemovePromotion() {
	sel.mu.Lock()
	sel.promotion = nil
	sel.mu.Unlock()
}

func (sel *SeatSelection) AppliedPromotion() *domain.Promotion {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	return sel.promotion
}

// Checkout reserves the selected seats as a pending booking and returns what
// the payment step needs. A seat conflict clears the selection and the
// promotion and returns ErrSeatsTaken; nothing is retried.
func (sel *SeatSelection) Checkout(ctx context.Context) (*domain.PaymentHandoff, error) {
	sel.mu.Lock()
	seats := sel.selectedLocked()
	promotion := sel.promotion
	sel.mu.Unlock()

	if len(seats) == 0 {
		return nil, domain.ErrNoSeatsSelected
	}
	if sel.Screening.ID == "" || sel.Movie.ID == "" || sel.Theater.ID == "" {
		return nil, domain.ErrSelectionNotReady
	}

	user, err := sel.svc.auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if promotion != nil {
		p, err := sel.svc.validatePromotion(ctx, promotion.Code)
		if err != nil {
			log.Info().Str("code", promotion.Code).Err(err).Msg("promotion rejected at checkout")
			return nil, err
		}
		promotion = p
		sel.mu.Lock()
		sel.promotion = p
		sel.mu.Unlock()
	}

	subtotal := domain.Subtotal(len(seats), sel.Screening.Price)
	discount := domain.ComputeDiscount(subtotal, promotion)
	total := domain.FinalTotal(subtotal, discount)
	key := domain.BookingKey(user.ID, sel.Screening.ID, seats)

	draft := domain.BookingDraft{
		UserID:         user.ID,
		ScreeningID:    sel.Screening.ID,
		Seats:          seats,
		Status:         domain.PaymentPending,
		TotalPrice:     total,
		IdempotencyKey: key,
	}
	if promotion != nil {
		draft.PromotionID = &promotion.ID
		draft.PromotionCode = &promotion.Code
		draft.DiscountAmount = &discount
	}

	bookingID, err := sel.svc.bookings.CreateBooking(ctx, draft)
	if err != nil {
		if domain.IsKind(err, domain.KindConflict) {
			sel.mu.Lock()
			sel.selected = make(map[string]struct{})
			sel.promotion = nil
			sel.mu.Unlock()
			log.Info().Str("screening_id", sel.Screening.ID).Strs("seats", seats).Msg("seats taken by another booking")
			return nil, fmt.Errorf("%w: %w", domain.ErrSeatsTaken, err)
		}
		return nil, err
	}

	log.Info().
		Str("booking_id", bookingID).
		Str("screening_id", sel.Screening.ID).
		Strs("seats", seats).
		Int64("total", total).
		Msg("pending booking created")

	start := sel.Screening.StartTime.Local()
	handoff := &domain.PaymentHandoff{
		BookingID:      bookingID,
		IdempotencyKey: key,
		UserID:         user.ID,
		ScreeningID:    sel.Screening.ID,
		MovieID:        sel.Movie.ID,
		MovieTitle:     sel.Movie.Title,
		TheaterID:      sel.Theater.ID,
		TheaterName:    sel.Theater.Name,
		Room:           sel.Screening.Room,
		Date:           start.Format("2006-01-02"),
		Time:           start.Format("15:04"),
		StartTime:      sel.Screening.StartTime,
		Seats:          seats,
		TicketPrice:    sel.Screening.Price,
		Subtotal:       subtotal,
		Discount:       discount,
		Total:          total,
	}
	if promotion != nil {
		handoff.PromotionID = promotion.ID
		handoff.PromotionCode = promotion.Code
	}
	return handoff, nil
}
