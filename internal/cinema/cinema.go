// Package cinema holds the booking core: showtime validation, movies,
// customers and the cinema that aggregates them. Nothing in it is safe for
// concurrent use; callers that share values across goroutines must guard them.
package cinema

import "github.com/iliyamo/cinema-booking/internal/model"

// Patron is anything that can be registered as a cinema customer.
type Patron interface {
	Account() *Customer
	Summary() model.CustomerSummary
}

// Cinema keeps the movies and customers registered with it, in the order they
// were added. It neither deduplicates nor cross-checks the two lists.
type Cinema struct {
	movies    []*Movie
	customers []Patron
}

func New() *Cinema {
	return &Cinema{}
}

func (c *Cinema) AddMovie(m *Movie) {
	c.movies = append(c.movies, m)
}

func (c *Cinema) AddCustomer(p Patron) {
	c.customers = append(c.customers, p)
}

// Movies returns the registered movies in insertion order.
func (c *Cinema) Movies() []*Movie {
	out := make([]*Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Customers returns the registered customers in insertion order.
func (c *Cinema) Customers() []Patron {
	out := make([]Patron, len(c.customers))
	copy(out, c.customers)
	return out
}
