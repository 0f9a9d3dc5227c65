package cinema

import "github.com/iliyamo/cinema-booking/internal/model"

// VIPDiscountRate is the fraction taken off the price for VIP customers.
const VIPDiscountRate = 0.2

// VIPCustomer is a Customer that gets discounted prices and may book
// private screenings.
type VIPCustomer struct {
	*Customer
}

func NewVIPCustomer(firstName, lastName string, opts ...Option) *VIPCustomer {
	return &VIPCustomer{Customer: NewCustomer(firstName, lastName, opts...)}
}

// DiscountedPrice applies the VIP discount to price.
func (v *VIPCustomer) DiscountedPrice(price float64) float64 {
	return price * (1 - VIPDiscountRate)
}

// BookPrivateShow records a private, VIP-discounted reservation for movie at t.
func (v *VIPCustomer) BookPrivateShow(movie *Movie, t string) error {
	return v.AddReservation(movie, t, Private(), WithVIPDiscount())
}

// Summary returns the sanitized customer view flagged as VIP.
func (v *VIPCustomer) Summary() model.CustomerSummary {
	s := v.Customer.Summary()
	s.VIP = true
	return s
}
