package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-booking/internal/cinema"
	"github.com/iliyamo/cinema-booking/internal/clock"
	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/queue"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []queue.ReservationRecordedEvent
	err    error
}

func (f *fakePublisher) PublishReservationRecorded(_ context.Context, ev queue.ReservationRecordedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return f.err
}

func (f *fakePublisher) recorded() []queue.ReservationRecordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]queue.ReservationRecordedEvent(nil), f.events...)
}

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newService(t *testing.T) (*BookingService, *fakePublisher) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	pub := &fakePublisher{}
	return NewBookingService(WithPublisher(pub), WithClock(clock.NewFixed(now)), WithLogger(logger)), pub
}

func TestBookingService_Movies(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)

	_, err := svc.CreateMovie("Bad", 0, nil)
	assert.ErrorIs(t, err, cinema.ErrInvalidDuration)
	_, err = svc.CreateMovie("Bad", 90, []string{"22:00"})
	assert.ErrorIs(t, err, cinema.ErrInvalidShowtime)
	assert.Empty(t, svc.ListMovies())

	from, err := svc.CreateMovie("From", 230, []string{"08:00", "09:00"})
	require.NoError(t, err)
	lost, err := svc.CreateMovie("From", 342, []string{"09:50"})
	require.NoError(t, err)
	assert.NotEqual(t, from.ID, lost.ID)

	listed := svc.ListMovies()
	require.Len(t, listed, 2)
	assert.Equal(t, from.ID, listed[0].ID)
	assert.Equal(t, lost.ID, listed[1].ID)

	got, err := svc.GetMovie(from.ID)
	require.NoError(t, err)
	assert.Equal(t, from, got)
	_, err = svc.GetMovie(uuid.New())
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestBookingService_Showtimes(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	from, err := svc.CreateMovie("From", 230, []string{"08:00"})
	require.NoError(t, err)

	got, err := svc.AddShowtime(from.ID, "10:00")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "10:00"}, got.Showtimes)

	got, err = svc.AddShowtime(from.ID, "10:00")
	assert.ErrorIs(t, err, cinema.ErrDuplicateShowtime)
	assert.Equal(t, []string{"08:00", "10:00"}, got.Showtimes)

	got, err = svc.RemoveShowtime(from.ID, "08:00")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, got.Showtimes)

	_, err = svc.RemoveShowtime(from.ID, "08:00")
	assert.ErrorIs(t, err, cinema.ErrShowtimeNotFound)

	_, err = svc.AddShowtime(uuid.New(), "10:00")
	assert.ErrorIs(t, err, ErrMovieNotFound)
	_, err = svc.RemoveShowtime(uuid.New(), "10:00")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestBookingService_Reserve(t *testing.T) {
	t.Parallel()

	svc, pub := newService(t)
	from, err := svc.CreateMovie("From", 230, []string{"08:00", "09:00", "09:50"})
	require.NoError(t, err)
	jon := svc.RegisterCustomer("Jon", "Smith", false)
	ctx := context.Background()

	r, err := svc.Reserve(ctx, jon.ID, from.ID, "09:50", false)
	require.NoError(t, err)
	assert.Equal(t, model.Reservation{
		Movie:           "From",
		Time:            "09:50",
		ReservationType: model.ReservationNormal,
		Discount:        model.DiscountNone,
	}, r)

	_, err = svc.Reserve(ctx, jon.ID, from.ID, "10:00", false)
	assert.ErrorIs(t, err, cinema.ErrNoScreening)
	_, err = svc.Reserve(ctx, jon.ID, from.ID, "nope", false)
	assert.ErrorIs(t, err, cinema.ErrInvalidShowtime)
	_, err = svc.Reserve(ctx, jon.ID, from.ID, "09:50", true)
	assert.ErrorIs(t, err, ErrNotVIP)
	_, err = svc.Reserve(ctx, uuid.New(), from.ID, "09:50", false)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	_, err = svc.Reserve(ctx, jon.ID, uuid.New(), "09:50", false)
	assert.ErrorIs(t, err, ErrMovieNotFound)

	summary, err := svc.GetCustomer(jon.ID)
	require.NoError(t, err)
	assert.Len(t, summary.Reservations, 1)

	events := pub.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, queue.ReservationRecordedEvent{
		CustomerID:      jon.ID.String(),
		CustomerName:    "Jon Smith",
		MovieID:         from.ID.String(),
		MovieTitle:      "From",
		Time:            "09:50",
		ReservationType: "Normal",
		Discount:        "None",
		RecordedAt:      "2025-03-14T09:30:00Z",
	}, events[0])
}

func TestBookingService_VIP(t *testing.T) {
	t.Parallel()

	svc, pub := newService(t)
	from, err := svc.CreateMovie("From", 230, []string{"09:50"})
	require.NoError(t, err)
	vip := svc.RegisterCustomer("Jon", "Jon", true)
	jon := svc.RegisterCustomer("Jon", "Smith", false)
	assert.True(t, vip.VIP)
	ctx := context.Background()

	r, err := svc.BookPrivateShow(ctx, vip.ID, from.ID, "09:50")
	require.NoError(t, err)
	assert.Equal(t, model.ReservationPrivate, r.ReservationType)
	assert.Equal(t, model.DiscountVIP, r.Discount)

	r, err = svc.Reserve(ctx, vip.ID, from.ID, "09:50", true)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationNormal, r.ReservationType)
	assert.Equal(t, model.DiscountVIP, r.Discount)

	_, err = svc.BookPrivateShow(ctx, jon.ID, from.ID, "09:50")
	assert.ErrorIs(t, err, ErrNotVIP)

	price, discounted, err := svc.QuotePrice(vip.ID, 100)
	require.NoError(t, err)
	assert.True(t, discounted)
	assert.Equal(t, 80.0, price)

	price, discounted, err = svc.QuotePrice(jon.ID, 100)
	require.NoError(t, err)
	assert.False(t, discounted)
	assert.Equal(t, 100.0, price)

	_, _, err = svc.QuotePrice(uuid.New(), 100)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	events := pub.recorded()
	require.Len(t, events, 2)
	assert.True(t, events[0].VIP)
	assert.Equal(t, "Private", events[0].ReservationType)

	customers := svc.ListCustomers()
	require.Len(t, customers, 2)
	assert.Equal(t, vip.ID, customers[0].ID)
	assert.Len(t, customers[0].Reservations, 2)
}

func TestBookingService_PublishFailureDoesNotFailBooking(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewBookingService(WithPublisher(pub), WithLogger(logger))
	from, err := svc.CreateMovie("From", 230, []string{"09:50"})
	require.NoError(t, err)
	jon := svc.RegisterCustomer("Jon", "Smith", false)

	_, err = svc.Reserve(context.Background(), jon.ID, from.ID, "09:50", false)
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "reservation event not published", hook.LastEntry().Message)
}

func TestBookingService_ConcurrentReservations(t *testing.T) {
	t.Parallel()

	svc, pub := newService(t)
	from, err := svc.CreateMovie("From", 230, []string{"09:50"})
	require.NoError(t, err)
	jon := svc.RegisterCustomer("Jon", "Smith", false)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reserve(context.Background(), jon.ID, from.ID, "09:50", false)
			assert.NoError(t, err)
			_ = svc.ListMovies()
		}()
	}
	wg.Wait()

	summary, err := svc.GetCustomer(jon.ID)
	require.NoError(t, err)
	assert.Len(t, summary.Reservations, n)
	assert.Len(t, pub.recorded(), n)
}
