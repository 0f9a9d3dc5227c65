// Package queue defines the messages exchanged over the broker and the
// background consumer that records them.
package queue

// ReservationQueue is the durable queue reservation events are routed to.
const ReservationQueue = "reservation.recorded"

// ReservationRecordedEvent is published every time a customer's reservation
// is recorded.  It carries everything downstream consumers need to log or
// notify without calling back into the API.
type ReservationRecordedEvent struct {
    CustomerID      string `json:"customer_id"`
    CustomerName    string `json:"customer_name"`
    VIP             bool   `json:"vip"`
    MovieID         string `json:"movie_id"`
    MovieTitle      string `json:"movie_title"`
    Time            string `json:"time"`
    ReservationType string `json:"reservation_type"`
    Discount        string `json:"discount"`
    RecordedAt      string `json:"recorded_at"`
}
