package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/services"
)

type command struct {
	usage    string
	notFound string
	run      func(ctx context.Context, args []string) error
}

var errUsage = &domain.Error{Kind: domain.KindValidation, Message: "Invalid arguments, run `cinema help` for usage."}

func (a *app) commands() map[string]command {
	return map[string]command{
		"login":           {usage: "login -email E -password P", run: a.login},
		"logout":          {usage: "logout", run: a.logout},
		"register":        {usage: "register -name N -email E -phone P -password P", run: a.register},
		"forgot-password": {usage: "forgot-password -email E", run: a.forgotPassword},
		"verify-otp":      {usage: "verify-otp -email E -otp CODE", run: a.verifyOTP},
		"reset-password":  {usage: "reset-password -email E -otp CODE -password P", run: a.resetPassword},
		"change-password": {usage: "change-password -current P -new P", run: a.changePassword},
		"profile":         {usage: "profile [-name N -phone P]", run: a.profile},
		"movies":          {usage: "movies [-status now-showing|coming-soon|ended]", run: a.movies},
		"movie":           {usage: "movie MOVIE_ID", notFound: "Movie not found.", run: a.movie},
		"theaters":        {usage: "theaters", run: a.theaters},
		"rooms":           {usage: "rooms", run: a.rooms},
		"showtimes":       {usage: "showtimes -theater ID -movie ID [-date YYYY-MM-DD]", run: a.showtimes},
		"seats":           {usage: "seats SCREENING_ID", notFound: "Showtime not found, pick another.", run: a.seats},
		"promotions":      {usage: "promotions", run: a.promotions},
		"book":            {usage: "book -screening ID -seats F7,F8 [-promo CODE]", notFound: "Showtime not found, pick another.", run: a.book},
		"pay":             {usage: "pay [-method card|momo|zalopay|cash]", notFound: "Booking not found, please select seats again.", run: a.pay},
		"cancel":          {usage: "cancel BOOKING_ID", notFound: "Booking not found.", run: a.cancel},
		"ticket":          {usage: "ticket", run: a.ticket},
		"tickets":         {usage: "tickets", run: a.history},
		"rate":            {usage: "rate MOVIE_ID 0-10", run: a.rate},
		"comment":         {usage: "comment -movie ID -text T [-anonymous] [-image REF]", run: a.comment},
		"reviews":         {usage: "reviews MOVIE_ID", run: a.reviews},
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: cinema <command> [flags]")
	fmt.Fprintln(w)
	a := &app{}
	cmds := a.commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", cmds[name].usage)
	}
}

func parse(name string, args []string, define func(fs *flag.FlagSet)) (*flag.FlagSet, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if define != nil {
		define(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	return fs, nil
}

func (a *app) login(ctx context.Context, args []string) error {
	var email, password string
	if _, err := parse("login", args, func(fs *flag.FlagSet) {
		fs.StringVar(&email, "email", "", "")
		fs.StringVar(&password, "password", "", "")
	}); err != nil {
		return err
	}
	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	var reg domain.Registration
	if _, err := parse("register", args, func(fs *flag.FlagSet) {
		fs.StringVar(&reg.Name, "name", "", "")
		fs.StringVar(&reg.Email, "email", "", "")
		fs.StringVar(&reg.Phone, "phone", "", "")
		fs.StringVar(&reg.Password, "password", "", "")
	}); err != nil {
		return err
	}
	if err := a.auth.Register(ctx, reg); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account created, you can now log in.")
	return nil
}

func (a *app) forgotPassword(ctx context.Context, args []string) error {
	var email string
	if _, err := parse("forgot-password", args, func(fs *flag.FlagSet) {
		fs.StringVar(&email, "email", "", "")
	}); err != nil {
		return err
	}
	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "A verification code was sent to", email)
	return nil
}

func (a *app) verifyOTP(ctx context.Context, args []string) error {
	var email, otp string
	if _, err := parse("verify-otp", args, func(fs *flag.FlagSet) {
		fs.StringVar(&email, "email", "", "")
		fs.StringVar(&otp, "otp", "", "")
	}); err != nil {
		return err
	}
	if err := a.auth.VerifyOTP(ctx, email, otp); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Code verified.")
	return nil
}

func (a *app) resetPassword(ctx context.Context, args []string) error {
	var email, otp, password string
	if _, err := parse("reset-password", args, func(fs *flag.FlagSet) {
		fs.StringVar(&email, "email", "", "")
		fs.StringVar(&otp, "otp", "", "")
		fs.StringVar(&password, "password", "", "")
	}); err != nil {
		return err
	}
	if err := a.auth.ResetPassword(ctx, email, otp, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password reset, you can now log in.")
	return nil
}

func (a *app) changePassword(ctx context.Context, args []string) error {
	var current, next string
	if _, err := parse("change-password", args, func(fs *flag.FlagSet) {
		fs.StringVar(&current, "current", "", "")
		fs.StringVar(&next, "new", "", "")
	}); err != nil {
		return err
	}
	if err := a.auth.ChangePassword(ctx, current, next); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

func (a *app) profile(ctx context.Context, args []string) error {
	var name, phone string
	if _, err := parse("profile", args, func(fs *flag.FlagSet) {
		fs.StringVar(&name, "name", "", "")
		fs.StringVar(&phone, "phone", "", "")
	}); err != nil {
		return err
	}

	var (
		user *domain.User
		err  error
	)
	if name != "" || phone != "" {
		current, cerr := a.auth.CurrentUser(ctx)
		if cerr != nil {
			return cerr
		}
		update := *current
		if name != "" {
			update.Name = name
		}
		if phone != "" {
			update.Phone = phone
		}
		user, err = a.auth.UpdateProfile(ctx, update)
	} else {
		user, err = a.auth.Profile(ctx)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Name:  %s\nEmail: %s\nPhone: %s\n", user.Name, user.Email, user.Phone)
	return nil
}

func (a *app) movies(ctx context.Context, args []string) error {
	var status string
	if _, err := parse("movies", args, func(fs *flag.FlagSet) {
		fs.StringVar(&status, "status", "", "")
	}); err != nil {
		return err
	}

	var (
		movies []domain.Movie
		err    error
	)
	if status != "" {
		movies, err = a.catalog.MoviesByStatus(ctx, domain.MovieStatus(status))
	} else {
		movies, err = a.catalog.Movies(ctx)
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tGENRE\tMINUTES\tSTATUS")
	for _, m := range movies {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", m.ID, m.Title, strings.Join(m.Genres(), ", "), m.Duration, m.Status)
	}
	return tw.Flush()
}

func oneArg(args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", errUsage
	}
	return strings.TrimSpace(args[0]), nil
}

func (a *app) movie(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	m, err := a.catalog.Movie(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)\n", m.Title, m.Status)
	if m.OriginalTitle != "" && m.OriginalTitle != m.Title {
		fmt.Fprintf(a.out, "Original title: %s\n", m.OriginalTitle)
	}
	fmt.Fprintf(a.out, "Genre: %s  Duration: %d min\n", m.Genre, m.Duration)
	if !m.ReleaseDate.IsZero() {
		fmt.Fprintf(a.out, "Release: %s\n", m.ReleaseDate.Format("2006-01-02"))
	}
	if m.Director != "" {
		fmt.Fprintf(a.out, "Director: %s\n", m.Director)
	}
	if len(m.Cast) > 0 {
		fmt.Fprintf(a.out, "Cast: %s\n", strings.Join(m.Cast, ", "))
	}
	if m.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", m.Description)
	}

	avg, n := a.ratings.Average(ctx, m.ID)
	if n > 0 {
		fmt.Fprintf(a.out, "\nViewer rating: %.1f/10 from %d rating(s)\n", avg, n)
	}
	if mine, ok := a.ratings.MyRating(ctx, m.ID); ok {
		fmt.Fprintf(a.out, "Your rating: %d/10\n", mine)
	}
	return nil
}

func (a *app) theaters(ctx context.Context, _ []string) error {
	theaters, err := a.catalog.Theaters(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tADDRESS\tSCREENS")
	for _, t := range theaters {
		if !t.IsActive {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", t.ID, t.Name, t.Address, t.ScreenCount)
	}
	return tw.Flush()
}

func (a *app) rooms(ctx context.Context, _ []string) error {
	rooms, err := a.catalog.Rooms(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTHEATER\tNAME\tCAPACITY")
	for _, r := range rooms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.ID, r.TheaterID, r.Name, r.Capacity)
	}
	return tw.Flush()
}

func (a *app) showtimes(ctx context.Context, args []string) error {
	var theaterID, movieID, date string
	if _, err := parse("showtimes", args, func(fs *flag.FlagSet) {
		fs.StringVar(&theaterID, "theater", "", "")
		fs.StringVar(&movieID, "movie", "", "")
		fs.StringVar(&date, "date", "", "")
	}); err != nil {
		return err
	}
	if theaterID == "" || movieID == "" {
		return errUsage
	}

	if date == "" {
		days, err := a.catalog.ShowtimeDates(ctx, theaterID, movieID, time.Local)
		if err != nil {
			return err
		}
		if len(days) == 0 {
			fmt.Fprintln(a.out, "No showtimes scheduled.")
			return nil
		}
		fmt.Fprintln(a.out, "Showing on:")
		for _, d := range days {
			fmt.Fprintf(a.out, "  %s\n", d.Format("Mon 2006-01-02"))
		}
		return nil
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return &domain.Error{Kind: domain.KindValidation, Message: "Date must look like 2026-10-17."}
	}
	shows, err := a.catalog.Showtimes(ctx, theaterID, movieID, day)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCREENING\tTIME\tROOM\tPRICE")
	for _, s := range shows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.StartTime.Local().Format("15:04"), s.Room, money(s.Price))
	}
	return tw.Flush()
}

func (a *app) seats(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	sel, err := a.selection.Start(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s | %s | %s | %s\n\n", sel.Movie.Title, sel.Theater.Name, sel.Screening.Room,
		sel.Screening.StartTime.Local().Format("Mon 2006-01-02 15:04"))
	printGrid(a.out, sel)
	fmt.Fprintf(a.out, "\nTicket price: %s\n", money(sel.Screening.Price))
	if len(sel.Promotions) > 0 {
		fmt.Fprintln(a.out, "Promotions:")
		for _, p := range sel.Promotions {
			fmt.Fprintf(a.out, "  %s  %s\n", p.Code, describeDiscount(p))
		}
	}
	return nil
}

func printGrid(w io.Writer, sel *services.SeatSelection) {
	fmt.Fprint(w, "   ")
	for c := 1; c <= domain.GridColumns; c++ {
		fmt.Fprintf(w, " %d  ", c)
	}
	fmt.Fprintln(w)
	for r, row := range sel.Seats().Rows() {
		fmt.Fprintf(w, "%c  ", 'A'+r)
		for _, s := range row {
			mark := " "
			switch {
			case s.Status == domain.SeatOccupied:
				mark = "x"
			case s.Status == domain.SeatPending:
				mark = "~"
			case sel.IsSelected(s.ID):
				mark = "*"
			case s.VIP:
				mark = "v"
			}
			fmt.Fprintf(w, "[%s] ", mark)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "\n[x] taken  [~] on hold  [v] VIP  [*] yours")
}

func (a *app) promotions(ctx context.Context, _ []string) error {
	promos, err := a.catalog.ActivePromotions(ctx)
	if err != nil {
		return err
	}
	if len(promos) == 0 {
		fmt.Fprintln(a.out, "No promotions right now.")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tDISCOUNT\tUNTIL")
	for _, p := range promos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Code, p.Name, describeDiscount(p), p.EndDate.Local().Format("2006-01-02"))
	}
	return tw.Flush()
}

func (a *app) book(ctx context.Context, args []string) error {
	var screeningID, seatList, code string
	if _, err := parse("book", args, func(fs *flag.FlagSet) {
		fs.StringVar(&screeningID, "screening", "", "")
		fs.StringVar(&seatList, "seats", "", "")
		fs.StringVar(&code, "promo", "", "")
	}); err != nil {
		return err
	}
	if screeningID == "" || seatList == "" {
		return errUsage
	}

	sel, err := a.selection.Start(ctx, screeningID)
	if err != nil {
		return err
	}
	for _, id := range strings.Split(seatList, ",") {
		id = strings.ToUpper(strings.TrimSpace(id))
		if id == "" || sel.IsSelected(id) {
			continue
		}
		if !sel.Toggle(id) {
			fmt.Fprintf(a.out, "Seat %s is not available, skipped.\n", id)
		}
	}
	if code != "" {
		if _, err := sel.ApplyPromotion(ctx, code); err != nil {
			return err
		}
	}

	h, err := sel.Checkout(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSeatsTaken) {
			fmt.Fprintln(a.out, "Your selection was cleared. Run `cinema seats", screeningID+"` to see what is left.")
		}
		return err
	}
	if err := a.snapshots.SavePendingCheckout(ctx, *h); err != nil {
		return fmt.Errorf("save checkout: %w", err)
	}

	printHandoff(a.out, h)
	fmt.Fprintln(a.out, "\nSeats are on hold. Run `cinema pay -method card` to finish.")
	return nil
}

func printHandoff(w io.Writer, h *domain.PaymentHandoff) {
	fmt.Fprintf(w, "Booking %s\n", h.BookingID)
	fmt.Fprintf(w, "%s at %s, %s\n", h.MovieTitle, h.TheaterName, h.Room)
	fmt.Fprintf(w, "%s %s  seats %s\n", h.Date, h.Time, strings.Join(h.Seats, ", "))
	fmt.Fprintf(w, "Subtotal: %s\n", money(h.Subtotal))
	if h.Discount > 0 {
		fmt.Fprintf(w, "Discount (%s): -%s\n", h.PromotionCode, money(h.Discount))
	}
	fmt.Fprintf(w, "Total:    %s\n", money(h.Total))
}

func (a *app) pay(ctx context.Context, args []string) error {
	var method string
	if _, err := parse("pay", args, func(fs *flag.FlagSet) {
		fs.StringVar(&method, "method", "card", "")
	}); err != nil {
		return err
	}
	ticket, err := a.payment.PayPending(ctx, method)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPaymentMethod) {
			for _, m := range a.payment.Methods() {
				fmt.Fprintf(a.out, "  %-8s %s\n", m.ID, m.Name)
			}
		}
		return err
	}
	fmt.Fprintln(a.out, "Payment complete.")
	fmt.Fprintln(a.out)
	printTicket(a.out, ticket)
	return nil
}

func (a *app) cancel(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	if err := a.payment.Cancel(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking %s cancelled, seats released.\n", id)
	return nil
}

func (a *app) ticket(ctx context.Context, _ []string) error {
	t, err := a.tickets.Current(ctx)
	if err != nil {
		return err
	}
	printTicket(a.out, t)
	return nil
}

func printTicket(w io.Writer, t *domain.Ticket) {
	fmt.Fprintln(w, "==== E-TICKET ====")
	fmt.Fprintf(w, "Booking: %s (%s)\n", t.BookingID, t.Status)
	fmt.Fprintf(w, "Movie:   %s\n", t.MovieTitle)
	fmt.Fprintf(w, "Cinema:  %s, %s\n", t.TheaterName, t.Room)
	fmt.Fprintf(w, "When:    %s\n", t.StartTime.Local().Format("Mon 2006-01-02 15:04"))
	fmt.Fprintf(w, "Seats:   %s\n", strings.Join(t.Seats, ", "))
	if t.Discount > 0 {
		fmt.Fprintf(w, "Discount: -%s (%s)\n", money(t.Discount), t.PromotionCode)
	}
	fmt.Fprintf(w, "Paid:    %s by %s\n", money(t.Total), t.PaymentMethod)
}

func (a *app) history(ctx context.Context, _ []string) error {
	bookings, err := a.tickets.History(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOOKING\tSCREENING\tSEATS\tTOTAL\tSTATUS\tBOOKED")
	for _, b := range bookings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", b.ID, b.ScreeningID, strings.Join(b.Seats, ","),
			money(b.TotalPrice), b.Status, b.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func (a *app) rate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	v, err := strconv.Atoi(args[1])
	if err != nil {
		return domain.ErrInvalidRating
	}
	if err := a.ratings.Rate(ctx, args[0], v); err != nil {
		return err
	}
	if v == 0 {
		fmt.Fprintln(a.out, "Rating removed.")
	} else {
		fmt.Fprintf(a.out, "Rated %d/10.\n", v)
	}
	return nil
}

func (a *app) comment(ctx context.Context, args []string) error {
	var movieID string
	var in services.CommentInput
	if _, err := parse("comment", args, func(fs *flag.FlagSet) {
		fs.StringVar(&movieID, "movie", "", "")
		fs.StringVar(&in.Text, "text", "", "")
		fs.BoolVar(&in.Anonymous, "anonymous", false, "")
		fs.StringVar(&in.ImageRef, "image", "", "")
	}); err != nil {
		return err
	}
	if movieID == "" {
		return errUsage
	}
	if _, err := a.ratings.Comment(ctx, movieID, in); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Thanks for your review.")
	return nil
}

func (a *app) reviews(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	avg, n := a.ratings.Average(ctx, id)
	if n > 0 {
		fmt.Fprintf(a.out, "Average %.1f/10 (%d)\n\n", avg, n)
	}
	reviews := a.ratings.Reviews(ctx, id)
	if len(reviews) == 0 {
		fmt.Fprintln(a.out, "No reviews yet.")
		return nil
	}
	for _, r := range reviews {
		rating := "-"
		if r.Rating > 0 {
			rating = fmt.Sprintf("%d/10", r.Rating)
		}
		fmt.Fprintf(a.out, "%s  %s  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.DisplayName(), rating)
		if r.Comment != "" {
			fmt.Fprintf(a.out, "  %s\n", r.Comment)
		}
		if r.ImageRef != "" {
			fmt.Fprintf(a.out, "  [image] %s\n", r.ImageRef)
		}
	}
	return nil
}

func describeDiscount(p domain.Promotion) string {
	if p.DiscountType == domain.DiscountPercent {
		return strconv.FormatFloat(p.Value, 'f', -1, 64) + "%"
	}
	return money(int64(p.Value))
}

// money formats an amount in whole currency units with thousands separators.
func money(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}
