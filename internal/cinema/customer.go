package cinema

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/cinema-booking/internal/model"
)

// Customer holds a person's identity and the reservations they have made.
type Customer struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	reservations []model.Reservation
	log          logrus.FieldLogger
}

// NewCustomer creates a customer with a fresh ID and no reservations.
func NewCustomer(firstName, lastName string, opts ...Option) *Customer {
	o := buildOptions(opts)
	id := uuid.New()
	return &Customer{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		log:       o.logger.WithField("customer", id.String()),
	}
}

// Account returns the customer itself; it lets *Customer and *VIPCustomer
// share the Patron interface.
func (c *Customer) Account() *Customer { return c }

func (c *Customer) FullName() string { return c.FirstName + " " + c.LastName }

type reservationFlags struct {
	private bool
	vip     bool
}

// ReservationOption tags a reservation made with AddReservation.
type ReservationOption func(*reservationFlags)

// Private books a private screening. Private reservations always carry the
// VIP discount marker.
func Private() ReservationOption {
	return func(f *reservationFlags) { f.private = true }
}

// WithVIPDiscount marks a regular reservation as VIP-discounted.
func WithVIPDiscount() ReservationOption {
	return func(f *reservationFlags) { f.vip = true }
}

// AddReservation records a reservation for movie at t.
//
// A malformed or out-of-window t fails with ErrInvalidShowtime. A valid t the
// movie does not screen returns ErrNoScreening and records nothing.
func (c *Customer) AddReservation(movie *Movie, t string, opts ...ReservationOption) error {
	if !ValidateTime(t) {
		return fmt.Errorf("%w: %q", ErrInvalidShowtime, t)
	}
	if !movie.HasShowtime(t) {
		c.log.WithFields(logrus.Fields{"movie": movie.Title(), "time": t}).Warn(ErrNoScreening.Error())
		return fmt.Errorf("%w: %s at %s", ErrNoScreening, movie.Title(), t)
	}

	var f reservationFlags
	for _, opt := range opts {
		opt(&f)
	}
	r := model.Reservation{
		Movie:           movie.Title(),
		Time:            t,
		ReservationType: model.ReservationNormal,
		Discount:        model.DiscountNone,
	}
	switch {
	case f.private:
		r.ReservationType = model.ReservationPrivate
		r.Discount = model.DiscountVIP
	case f.vip:
		r.Discount = model.DiscountVIP
	}
	c.reservations = append(c.reservations, r)
	return nil
}

// Reservations returns the recorded reservations in insertion order.
func (c *Customer) Reservations() []model.Reservation {
	out := make([]model.Reservation, len(c.reservations))
	copy(out, c.reservations)
	return out
}

// Summary returns the sanitized customer view.
func (c *Customer) Summary() model.CustomerSummary {
	return model.CustomerSummary{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Reservations: c.Reservations(),
	}
}
