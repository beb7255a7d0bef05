package kafka

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/elegantedge/summer-school-backend/models"
)

// EnrollmentEventProducer publishes enrollment events keyed by payer email.
type EnrollmentEventProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewEnrollmentEventProducer(brokers []string, topic string) *EnrollmentEventProducer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	log.Printf("[KafkaProducer] initialized topic=%s brokers=%v", topic, brokers)
	return &EnrollmentEventProducer{writer: w, topic: topic}
}

func (p *EnrollmentEventProducer) PublishEnrollmentCompleted(ctx context.Context, event models.EnrollmentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.Email),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("❌ Failed to send enrollment event: %v", err)
		return err
	}
	return nil
}

func (p *EnrollmentEventProducer) Close() {
	_ = p.writer.Close()
	log.Println("🔌 Kafka producer closed")
}
