package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// Publisher pushes order lifecycle events to the message bus. Publishing is
// best-effort: order persistence never depends on a publish succeeding.
type Publisher interface {
	PublishOrderCreated(event OrderCreatedEvent) error
	PublishOrderDeleted(event OrderDeletedEvent) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher connects a sync producer to the given brokers.
func NewKafkaPublisher(brokers []string, topic string) (Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Println("Kafka producer connected successfully")
	return &kafkaPublisher{producer: producer, topic: topic}, nil
}

func (p *kafkaPublisher) PublishOrderCreated(event OrderCreatedEvent) error {
	return p.push(event)
}

func (p *kafkaPublisher) PublishOrderDeleted(event OrderDeletedEvent) error {
	return p.push(event)
}

func (p *kafkaPublisher) push(event interface{}) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(message),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message to Kafka topic %q: %w", p.topic, err)
	}
	log.Printf("Event sent to topic %q, partition %d, offset %d", p.topic, partition, offset)
	return nil
}

// NoopPublisher is used when no Kafka brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderCreated(OrderCreatedEvent) error { return nil }
func (NoopPublisher) PublishOrderDeleted(OrderDeletedEvent) error { return nil }
