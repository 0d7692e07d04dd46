package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"booking-calendar-sync/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const routingKeyPrefix = "booking."

// AMQPNotifier publishes rendered notifications to a topic exchange with routing
// key booking.<kind>. Delivery is at-most-once; mail sending lives downstream.
type AMQPNotifier struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	renderer *Renderer
}

func NewAMQPNotifier(url, exchange string, renderer *Renderer) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange, renderer: renderer}, nil
}

func (p *AMQPNotifier) Notify(ctx context.Context, n shared.Notification) error {
	msg, err := p.renderer.Render(n)
	if err != nil {
		return err
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, routingKeyPrefix+string(n.Kind), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    n.BookingID.String() + ":" + string(n.Kind),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", n.Kind, err)
	}
	return nil
}

func (p *AMQPNotifier) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// LogNotifier renders and logs notifications when no broker is configured.
type LogNotifier struct {
	renderer *Renderer
}

func NewLogNotifier(renderer *Renderer) *LogNotifier {
	return &LogNotifier{renderer: renderer}
}

func (l *LogNotifier) Notify(ctx context.Context, n shared.Notification) error {
	msg, err := l.renderer.Render(n)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "notification",
		"kind", string(n.Kind),
		"audience", string(n.Audience),
		"booking_id", n.BookingID.String(),
		"subject", msg.Subject,
	)
	return nil
}
