package model

// ReservationType tells whether a booking is a regular seat in a public
// screening or a private screening.
type ReservationType string

const (
    ReservationNormal  ReservationType = "Normal"
    ReservationPrivate ReservationType = "Private"
)

// Discount marks the discount eligibility attached to a reservation.  The
// record never carries a numeric price; VIP pricing is computed on demand
// by the customer.
type Discount string

const (
    DiscountNone Discount = "None"
    DiscountVIP  Discount = "VIP"
)

// Reservation records a customer's booking for one showtime of a movie.
// Reservations are append-only: once recorded they are never edited or
// removed.
//
// Fields:
//  Movie           – title of the reserved movie.
//  Time            – showtime exactly as it appears in the movie's list.
//  ReservationType – Normal or Private.
//  Discount        – None or VIP.
type Reservation struct {
    Movie           string          `json:"movie"`
    Time            string          `json:"time"`
    ReservationType ReservationType `json:"reservation_type"`
    Discount        Discount        `json:"discount"`
}
