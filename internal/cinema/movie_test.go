package cinema

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovie(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive durations", func(t *testing.T) {
		for _, d := range []int{0, -1, -230} {
			m, err := NewMovie("From", d, []string{"09:00"})
			assert.ErrorIs(t, err, ErrInvalidDuration)
			assert.Nil(t, m)
		}
	})

	t.Run("rejects showtimes outside the window or malformed", func(t *testing.T) {
		for _, st := range []string{"07:59", "20:01", "bad", "25:00", ""} {
			m, err := NewMovie("From", 230, []string{"09:00", st})
			assert.ErrorIs(t, err, ErrInvalidShowtime, "showtime %q", st)
			assert.Nil(t, m)
		}
	})

	t.Run("duration is checked before showtimes", func(t *testing.T) {
		_, err := NewMovie("From", 0, []string{"bad"})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("accepts the window boundaries", func(t *testing.T) {
		m, err := NewMovie("From", 230, []string{"08:00", "20:00"})
		require.NoError(t, err)
		assert.Equal(t, []string{"08:00", "20:00"}, m.Showtimes())
	})

	t.Run("accepts single-digit minutes", func(t *testing.T) {
		m, err := NewMovie("From", 230, []string{"10:5", "8:0"})
		require.NoError(t, err)
		assert.Equal(t, []string{"10:5", "8:0"}, m.Showtimes())
		assert.False(t, m.HasShowtime("10:05"))
	})

	t.Run("keeps order and input duplicates", func(t *testing.T) {
		m, err := NewMovie("Lost", 342, []string{"9:50", "8:00", "9:50"})
		require.NoError(t, err)
		assert.Equal(t, []string{"9:50", "8:00", "9:50"}, m.Showtimes())
	})

	t.Run("does not alias the caller's slice", func(t *testing.T) {
		in := []string{"08:00"}
		m, err := NewMovie("From", 230, in)
		require.NoError(t, err)
		in[0] = "19:00"
		assert.Equal(t, []string{"08:00"}, m.Showtimes())
	})
}

func TestMovie_AddShowtime(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	m, err := NewMovie("From", 230, []string{"08:00", "09:00"}, WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, m.AddShowtime("10:15"))
	assert.Equal(t, []string{"08:00", "09:00", "10:15"}, m.Showtimes())

	err = m.AddShowtime("09:00")
	assert.ErrorIs(t, err, ErrDuplicateShowtime)
	assert.True(t, IsNotice(err))
	assert.Equal(t, []string{"08:00", "09:00", "10:15"}, m.Showtimes())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "09:00", hook.LastEntry().Data["time"])
	assert.Equal(t, "From", hook.LastEntry().Data["movie"])

	hook.Reset()
	err = m.AddShowtime("21:00")
	assert.ErrorIs(t, err, ErrInvalidShowtime)
	assert.False(t, IsNotice(err))
	assert.Empty(t, hook.AllEntries())
	assert.Equal(t, []string{"08:00", "09:00", "10:15"}, m.Showtimes())
}

func TestMovie_RemoveShowtime(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	m, err := NewMovie("From", 230, []string{"08:00", "09:00", "09:50"}, WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, m.RemoveShowtime("09:00"))
	assert.Equal(t, []string{"08:00", "09:50"}, m.Showtimes())
	assert.Empty(t, hook.AllEntries())

	err = m.RemoveShowtime("12:00")
	assert.ErrorIs(t, err, ErrShowtimeNotFound)
	assert.True(t, IsNotice(err))
	assert.Equal(t, []string{"08:00", "09:50"}, m.Showtimes())
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestMovie_Details(t *testing.T) {
	t.Parallel()

	m, err := NewMovie("From", 230, []string{"08:00", "09:00"})
	require.NoError(t, err)

	d := m.Details()
	assert.Equal(t, "From", d.Title)
	assert.Equal(t, 230, d.Duration)
	assert.Equal(t, []string{"08:00", "09:00"}, d.Showtimes)

	h, mins := d.DurationParts()
	assert.Equal(t, 3, h)
	assert.Equal(t, 50, mins)
	assert.Contains(t, d.String(), "Duration 3h 50m")

	d.Showtimes[0] = "19:00"
	assert.Equal(t, []string{"08:00", "09:00"}, m.Showtimes())
}
