package kafka

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"fxnews/types"

	"github.com/IBM/sarama"
)

// Producer publishes ranked article sets to a Kafka topic so downstream
// consumers (forecasting jobs, archival) get each refresh without polling
// the HTTP API.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// ProducerConfig holds Kafka producer configuration.
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer.
func NewProducer(config ProducerConfig) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &Producer{producer: producer, topic: config.Topic}, nil
}

// NewProducerFromEnv creates a producer from KAFKA_BROKERS (comma
// separated) and KAFKA_TOPIC. Returns nil when brokers are not
// configured, meaning publishing is disabled.
func NewProducerFromEnv() (*Producer, error) {
	brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokers == "" {
		return nil, nil
	}

	topic := strings.TrimSpace(os.Getenv("KAFKA_TOPIC"))
	if topic == "" {
		topic = "fxnews.articles"
	}

	return NewProducer(ProducerConfig{
		Brokers: strings.Split(brokers, ","),
		Topic:   topic,
	})
}

// PublishArticles sends one message per enriched article, keyed by a
// stable hash of the article URL so replays land on the same partition.
func (p *Producer) PublishArticles(articles []types.EnrichedArticle) error {
	for _, a := range articles {
		payload, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal article %s: %w", a.URL, err)
		}

		msg := &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(types.GenerateID(a.URL)),
			Value: sarama.ByteEncoder(payload),
		}
		if _, _, err := p.producer.SendMessage(msg); err != nil {
			return fmt.Errorf("failed to publish article %s: %w", a.URL, err)
		}
	}
	return nil
}

// Close shuts down the underlying producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}
