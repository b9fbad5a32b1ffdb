package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"itickets/pkg/logger"

	"github.com/IBM/sarama"
)

// Publisher announces committed bookings to downstream consumers
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, msg *BookingConfirmed) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka booking publisher
type KafkaProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		Topic:            EventTypeBookingConfirmed,
		RetryMax:         3,
		Timeout:          10 * time.Second,
		RequiredAcks:     sarama.WaitForAll, // Wait for all in-sync replicas
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000, // 1MB
	}
}

// NewSaramaConfig translates the producer settings into a sarama config
func NewSaramaConfig(config *KafkaProducerConfig) *sarama.Config {
	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = "itickets-bookings"
	saramaConfig.Version = sarama.V2_1_0_0

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner routes all messages of a booking to one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	return saramaConfig
}

// KafkaBookingPublisher publishes booking confirmations to Kafka
type KafkaBookingPublisher struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
	logger   *logger.Logger
}

// NewKafkaBookingPublisher connects a sync producer to the configured brokers
func NewKafkaBookingPublisher(config *KafkaProducerConfig) (*KafkaBookingPublisher, error) {
	producer, err := sarama.NewSyncProducer(config.Brokers, NewSaramaConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return NewKafkaBookingPublisherWithProducer(producer, config), nil
}

// NewKafkaBookingPublisherWithProducer wraps an existing producer
func NewKafkaBookingPublisherWithProducer(producer sarama.SyncProducer, config *KafkaProducerConfig) *KafkaBookingPublisher {
	return &KafkaBookingPublisher{
		producer: producer,
		config:   config,
		logger:   logger.GetDefault(),
	}
}

func (p *KafkaBookingPublisher) PublishBookingConfirmed(ctx context.Context, msg *BookingConfirmed) error {
	msg.stamp(time.Now().UTC())

	messageBytes, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking confirmation: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.config.Topic,
		Key:       sarama.StringEncoder(msg.PartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   p.createHeaders(msg),
		Timestamp: msg.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking confirmation to Kafka: %w", err)
	}

	p.logger.DebugContext(ctx, "Booking confirmation published",
		slog.String("topic", p.config.Topic),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
		slog.String("booking_reference", msg.BookingReference),
	)

	return nil
}

// createHeaders creates Kafka headers for a booking confirmation
func (p *KafkaBookingPublisher) createHeaders(msg *BookingConfirmed) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("message_id"), Value: []byte(msg.MessageID)},
		{Key: []byte("event_type"), Value: []byte(msg.EventType)},
		{Key: []byte("booking_reference"), Value: []byte(msg.BookingReference)},
		{Key: []byte("event_id"), Value: []byte(strconv.FormatInt(msg.EventID, 10))},
		{Key: []byte("producer"), Value: []byte("itickets-bookings")},
		{Key: []byte("created_at"), Value: []byte(msg.OccurredAt.Format(time.RFC3339))},
	}
}

func (p *KafkaBookingPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}

// NoopPublisher drops confirmations. Used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingConfirmed(context.Context, *BookingConfirmed) error { return nil }

func (NoopPublisher) Close() error { return nil }
