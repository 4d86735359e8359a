package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "webreader.topic"
	routingKey   = "vocabulary.updated"
)

// Vocabulary change actions carried by vocabulary.updated.
const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
	ActionCleared = "cleared"
)

// VocabularyUpdatedPublisher publishes vocabulary.updated events.
type VocabularyUpdatedPublisher struct {
	conn *amqp.Connection
}

type vocabularyUpdatedEvent struct {
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Word      string `json:"word,omitempty"`
	Count     int    `json:"count"`
}

// NewVocabularyUpdatedPublisher connects to RabbitMQ and ensures the topic
// exchange exists.
func NewVocabularyUpdatedPublisher(rabbitmqURL string) (*VocabularyUpdatedPublisher, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchangeName, err)
	}

	return &VocabularyUpdatedPublisher{conn: conn}, nil
}

// PublishVocabularyUpdated publishes one change. count is the number of
// entries affected.
func (p *VocabularyUpdatedPublisher) PublishVocabularyUpdated(ctx context.Context, action, word string, count int) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	body, err := encodeVocabularyUpdated(action, word, count, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish vocabulary.updated: %w", err)
	}

	return nil
}

func encodeVocabularyUpdated(action, word string, count int, at time.Time) ([]byte, error) {
	body, err := json.Marshal(vocabularyUpdatedEvent{
		Timestamp: at.Format(time.RFC3339),
		Action:    action,
		Word:      word,
		Count:     count,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal vocabulary.updated event: %w", err)
	}
	return body, nil
}

func (p *VocabularyUpdatedPublisher) Close() error {
	return p.conn.Close()
}
