package cinema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCinema(t *testing.T) {
	t.Parallel()

	c := New()
	assert.Empty(t, c.Movies())
	assert.Empty(t, c.Customers())

	from, err := NewMovie("From", 230, []string{"8:00", "9:00", "9:50"})
	require.NoError(t, err)
	lost, err := NewMovie("Lost", 342, []string{"8:00", "9:00", "9:50"})
	require.NoError(t, err)

	c.AddMovie(from)
	c.AddMovie(lost)
	c.AddMovie(from)
	assert.Equal(t, []*Movie{from, lost, from}, c.Movies())

	jon := NewCustomer("Jon", "Smith")
	vip := NewVIPCustomer("Jon", "Jon")
	c.AddCustomer(vip)
	c.AddCustomer(jon)

	customers := c.Customers()
	require.Len(t, customers, 2)
	_, isVIP := customers[0].(*VIPCustomer)
	assert.True(t, isVIP)
	assert.Same(t, jon, customers[1].Account())
}

func TestCinema_NoCrossChecks(t *testing.T) {
	t.Parallel()

	c := New()
	jon := NewCustomer("Jon", "Smith")
	c.AddCustomer(jon)

	unregistered, err := NewMovie("Lost", 342, []string{"09:00"})
	require.NoError(t, err)
	require.NoError(t, jon.AddReservation(unregistered, "09:00"))
	assert.Empty(t, c.Movies())
	assert.Len(t, c.Customers()[0].Account().Reservations(), 1)
}

func TestBookingFlow(t *testing.T) {
	t.Parallel()

	from, err := NewMovie("From", 230, []string{"08:00", "09:00", "09:50"})
	require.NoError(t, err)

	c := New()
	c.AddMovie(from)
	jon := NewCustomer("Jon", "Smith")
	vip := NewVIPCustomer("Jon", "Jon")
	c.AddCustomer(vip)
	c.AddCustomer(jon)

	require.NoError(t, jon.AddReservation(from, "09:50"))
	require.NoError(t, vip.BookPrivateShow(from, "09:50"))

	for _, p := range c.Customers() {
		switch cust := p.(type) {
		case *VIPCustomer:
			require.NoError(t, cust.AddReservation(c.Movies()[0], "09:50", WithVIPDiscount()))
		case *Customer:
			require.NoError(t, cust.AddReservation(c.Movies()[0], "09:50"))
		}
	}

	assert.Len(t, jon.Reservations(), 2)
	vr := vip.Reservations()
	require.Len(t, vr, 2)
	assert.Equal(t, "Private", string(vr[0].ReservationType))
	assert.Equal(t, "Normal", string(vr[1].ReservationType))
	assert.Equal(t, "VIP", string(vr[1].Discount))
}
