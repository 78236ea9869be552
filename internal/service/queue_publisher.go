// Package queue_publisher publishes booking domain events to RabbitMQ.
// Errors are logged and returned to allow callers to ignore failures
// without interrupting the main request flow.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/hotel-room-reservation/internal/queue"
)

// Publisher publishes booking events. It dials the broker per
// publish, which keeps it connectionless and safe to share; the
// booking endpoints call it from background goroutines so broker
// latency never sits on the request path.
type Publisher struct {
	url string
}

// New builds a Publisher against the broker URL resolved from the
// environment.
func New() *Publisher {
	return &Publisher{url: q.BrokerURL()}
}

// BookingConfirmed publishes a BookingConfirmedEvent to the
// booking.confirmed queue.
func (p *Publisher) BookingConfirmed(ctx context.Context, event q.BookingConfirmedEvent) error {
	return p.publish(ctx, q.BookingConfirmedQueue, event)
}

// BookingCancelled publishes a BookingCancelledEvent to the
// booking.cancelled queue.
func (p *Publisher) BookingCancelled(ctx context.Context, event q.BookingCancelledEvent) error {
	return p.publish(ctx, q.BookingCancelledQueue, event)
}

// publish marshals the event and sends it to the named queue via the
// default exchange. Messages are marked persistent; any error is
// logged and returned so the caller can choose to ignore it.
func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
