// Package service exposes the booking core to concurrent callers.  The
// cinema, its movies and its customers are only touched while holding the
// service lock; identifiers are assigned here because the core does not
// require titles or names to be unique.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/cinema-booking/internal/cinema"
	"github.com/iliyamo/cinema-booking/internal/clock"
	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/queue"
)

const publishTimeout = 5 * time.Second

// BookingService guards a cinema.Cinema and indexes its movies and customers.
type BookingService struct {
	mu        sync.RWMutex
	cinema    *cinema.Cinema
	movies    map[uuid.UUID]*cinema.Movie
	movieIDs  map[*cinema.Movie]uuid.UUID
	customers map[uuid.UUID]cinema.Patron

	publisher Publisher
	clock     clock.Clock
	log       logrus.FieldLogger
}

// Option configures a BookingService.
type Option func(*BookingService)

func WithPublisher(p Publisher) Option {
	return func(s *BookingService) {
		if p != nil {
			s.publisher = p
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(s *BookingService) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *BookingService) {
		if l != nil {
			s.log = l
		}
	}
}

// NewBookingService returns a service around an empty cinema.  Without
// options it drops events, uses the system clock and the standard logger.
func NewBookingService(opts ...Option) *BookingService {
	s := &BookingService{
		cinema:    cinema.New(),
		movies:    make(map[uuid.UUID]*cinema.Movie),
		movieIDs:  make(map[*cinema.Movie]uuid.UUID),
		customers: make(map[uuid.UUID]cinema.Patron),
		publisher: NopPublisher{},
		clock:     clock.NewSystem(),
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateMovie validates and registers a movie.  Validation errors come from
// cinema.NewMovie unchanged.
func (s *BookingService) CreateMovie(title string, duration int, showtimes []string) (model.MovieListing, error) {
	m, err := cinema.NewMovie(title, duration, showtimes, cinema.WithLogger(s.log))
	if err != nil {
		return model.MovieListing{}, err
	}
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cinema.AddMovie(m)
	s.movies[id] = m
	s.movieIDs[m] = id
	s.log.WithFields(logrus.Fields{"movie_id": id, "title": title}).Info("movie added")
	return listing(id, m), nil
}

// ListMovies returns every movie in registration order.
func (s *BookingService) ListMovies() []model.MovieListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	movies := s.cinema.Movies()
	out := make([]model.MovieListing, 0, len(movies))
	for _, m := range movies {
		out = append(out, listing(s.movieIDs[m], m))
	}
	return out
}

func (s *BookingService) GetMovie(id uuid.UUID) (model.MovieListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movies[id]
	if !ok {
		return model.MovieListing{}, ErrMovieNotFound
	}
	return listing(id, m), nil
}

// AddShowtime adds t to the movie.  The returned listing reflects the movie
// after the call, also when the core reported a notice.
func (s *BookingService) AddShowtime(id uuid.UUID, t string) (model.MovieListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return model.MovieListing{}, ErrMovieNotFound
	}
	err := m.AddShowtime(t)
	return listing(id, m), err
}

// RemoveShowtime removes t from the movie.
func (s *BookingService) RemoveShowtime(id uuid.UUID, t string) (model.MovieListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return model.MovieListing{}, ErrMovieNotFound
	}
	err := m.RemoveShowtime(t)
	return listing(id, m), err
}

// RegisterCustomer creates a standard or VIP customer and adds it to the cinema.
func (s *BookingService) RegisterCustomer(firstName, lastName string, vip bool) model.CustomerSummary {
	var p cinema.Patron
	if vip {
		p = cinema.NewVIPCustomer(firstName, lastName, cinema.WithLogger(s.log))
	} else {
		p = cinema.NewCustomer(firstName, lastName, cinema.WithLogger(s.log))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cinema.AddCustomer(p)
	s.customers[p.Account().ID] = p
	s.log.WithFields(logrus.Fields{"customer_id": p.Account().ID, "vip": vip}).Info("customer registered")
	return p.Summary()
}

func (s *BookingService) GetCustomer(id uuid.UUID) (model.CustomerSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.customers[id]
	if !ok {
		return model.CustomerSummary{}, ErrCustomerNotFound
	}
	return p.Summary(), nil
}

// ListCustomers returns every customer in registration order.
func (s *BookingService) ListCustomers() []model.CustomerSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	customers := s.cinema.Customers()
	out := make([]model.CustomerSummary, 0, len(customers))
	for _, p := range customers {
		out = append(out, p.Summary())
	}
	return out
}

// Reserve books a regular seat.  Only VIP customers may ask for the VIP
// discount marker.
func (s *BookingService) Reserve(ctx context.Context, customerID, movieID uuid.UUID, t string, vipDiscount bool) (model.Reservation, error) {
	return s.book(ctx, customerID, movieID, func(p cinema.Patron, m *cinema.Movie) error {
		if !vipDiscount {
			return p.Account().AddReservation(m, t)
		}
		if _, ok := p.(*cinema.VIPCustomer); !ok {
			return ErrNotVIP
		}
		return p.Account().AddReservation(m, t, cinema.WithVIPDiscount())
	})
}

// BookPrivateShow books a private screening for a VIP customer.
func (s *BookingService) BookPrivateShow(ctx context.Context, customerID, movieID uuid.UUID, t string) (model.Reservation, error) {
	return s.book(ctx, customerID, movieID, func(p cinema.Patron, m *cinema.Movie) error {
		vip, ok := p.(*cinema.VIPCustomer)
		if !ok {
			return ErrNotVIP
		}
		return vip.BookPrivateShow(m, t)
	})
}

// QuotePrice returns what the customer pays for a ticket listed at price and
// whether the VIP discount was applied.
func (s *BookingService) QuotePrice(customerID uuid.UUID, price float64) (float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.customers[customerID]
	if !ok {
		return 0, false, ErrCustomerNotFound
	}
	if vip, ok := p.(*cinema.VIPCustomer); ok {
		return vip.DiscountedPrice(price), true, nil
	}
	return price, false, nil
}

// book runs reserve under the lock and publishes the recorded reservation
// after releasing it.  Publishing failures never fail the booking.
func (s *BookingService) book(ctx context.Context, customerID, movieID uuid.UUID, reserve func(cinema.Patron, *cinema.Movie) error) (model.Reservation, error) {
	s.mu.Lock()
	p, ok := s.customers[customerID]
	if !ok {
		s.mu.Unlock()
		return model.Reservation{}, ErrCustomerNotFound
	}
	m, ok := s.movies[movieID]
	if !ok {
		s.mu.Unlock()
		return model.Reservation{}, ErrMovieNotFound
	}
	acct := p.Account()
	if err := reserve(p, m); err != nil {
		s.mu.Unlock()
		return model.Reservation{}, err
	}
	all := acct.Reservations()
	s.mu.Unlock()

	r := all[len(all)-1]
	_, vip := p.(*cinema.VIPCustomer)
	event := queue.ReservationRecordedEvent{
		CustomerID:      customerID.String(),
		CustomerName:    acct.FullName(),
		VIP:             vip,
		MovieID:         movieID.String(),
		MovieTitle:      r.Movie,
		Time:            r.Time,
		ReservationType: string(r.ReservationType),
		Discount:        string(r.Discount),
		RecordedAt:      s.clock.Now().Format(time.RFC3339),
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.PublishReservationRecorded(pubCtx, event); err != nil {
		s.log.WithError(err).WithField("customer_id", customerID).Warn("reservation event not published")
	}
	return r, nil
}

func listing(id uuid.UUID, m *cinema.Movie) model.MovieListing {
	return model.MovieListing{ID: id, MovieDetails: m.Details()}
}
