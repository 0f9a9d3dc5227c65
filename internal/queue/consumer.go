package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/sirupsen/logrus"
)

// ReservationLogFile is the file the consumer appends to inside its directory.
const ReservationLogFile = "reservations.log"

// Consumer listens on the reservation queue and appends one line per event
// to Dir/reservations.log.
type Consumer struct {
    URL string
    Dir string
    Log logrus.FieldLogger
}

func NewConsumer(url, dir string, log logrus.FieldLogger) *Consumer {
    return &Consumer{URL: url, Dir: dir, Log: log.WithField("component", "reservation-consumer")}
}

// Run connects to the broker, declares the durable queue and consumes until
// ctx is cancelled.  Dial failures and dropped connections are retried with
// exponential backoff capped at 30s.  Messages that cannot be handled are
// rejected without requeueing so a bad payload cannot spin the loop.
func (c *Consumer) Run(ctx context.Context) error {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(c.URL)
        if err != nil {
            c.Log.WithError(err).Warnf("failed to dial broker; retrying in %s", backoff)
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = c.consumeLoop(ctx, conn)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        c.Log.WithError(err).Warn("consume loop ended; reconnecting")
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        c.Log.WithError(err).Warn("set QoS failed")
    }
    if _, err := ch.QueueDeclare(ReservationQueue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(ReservationQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := c.Handle(d.Body); err != nil {
                c.Log.WithError(err).Error("handle message failed")
                _ = d.Nack(false, false)
                continue
            }
            _ = d.Ack(false)
        }
    }
}

// Handle decodes one event and appends its line to the reservation log.
func (c *Consumer) Handle(body []byte) error {
    var ev ReservationRecordedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if err := os.MkdirAll(c.Dir, 0o755); err != nil {
        return fmt.Errorf("mkdir %s: %w", c.Dir, err)
    }
    f, err := os.OpenFile(filepath.Join(c.Dir, ReservationLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    if _, err := f.WriteString(FormatLine(ev)); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    c.Log.WithFields(logrus.Fields{"customer_id": ev.CustomerID, "movie": ev.MovieTitle, "time": ev.Time}).Debug("reservation logged")
    return nil
}

// FormatLine renders ev as a single human-readable log line.
func FormatLine(ev ReservationRecordedEvent) string {
    tier := "standard"
    if ev.VIP {
        tier = "vip"
    }
    return fmt.Sprintf("[%s] Reservation recorded | customer_id=%s | customer=%q | tier=%s | movie_id=%s | movie=%q | time=%s | type=%s | discount=%s\n",
        ev.RecordedAt, ev.CustomerID, ev.CustomerName, tier, ev.MovieID, ev.MovieTitle, ev.Time, ev.ReservationType, ev.Discount)
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
