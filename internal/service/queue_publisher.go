package service

import (
    "context"
    "encoding/json"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/cinema-booking/internal/queue"
)

// Publisher delivers reservation events to downstream consumers.
type Publisher interface {
    PublishReservationRecorded(ctx context.Context, event queue.ReservationRecordedEvent) error
}

// AMQPPublisher publishes to RabbitMQ.  It dials per publish, which keeps it
// stateless; booking traffic is low enough for that to be fine.
type AMQPPublisher struct {
    URL string
    Log logrus.FieldLogger
}

func NewAMQPPublisher(url string, log logrus.FieldLogger) *AMQPPublisher {
    return &AMQPPublisher{URL: url, Log: log.WithField("component", "publisher")}
}

// PublishReservationRecorded sends event to the durable reservation queue as
// a persistent JSON message.  Every failure is logged and returned.
func (p *AMQPPublisher) PublishReservationRecorded(ctx context.Context, event queue.ReservationRecordedEvent) error {
    conn, err := amqp.Dial(p.URL)
    if err != nil {
        p.Log.WithError(err).Warn("rabbitmq: dial failed")
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        p.Log.WithError(err).Warn("rabbitmq: channel open failed")
        return err
    }
    defer func() { _ = ch.Close() }()

    if _, err := ch.QueueDeclare(
        queue.ReservationQueue, // name
        true,                   // durable
        false,                  // autoDelete
        false,                  // exclusive
        false,                  // noWait
        nil,                    // args
    ); err != nil {
        p.Log.WithError(err).Warn("rabbitmq: queue declare failed")
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        return err
    }
    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", queue.ReservationQueue, false, false, pub); err != nil {
        p.Log.WithError(err).Warn("rabbitmq: publish failed")
        return err
    }
    return nil
}

// NopPublisher drops every event.  It is used when events are disabled.
type NopPublisher struct{}

func (NopPublisher) PublishReservationRecorded(context.Context, queue.ReservationRecordedEvent) error {
    return nil
}
