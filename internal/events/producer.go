package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/place-of-your-own/artworks/internal/models"
)

// Producer publishes pipeline events to Kafka
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// PipelineResultMessage is the payload published after each pipeline run.
type PipelineResultMessage struct {
	Theme      string                `json:"theme"`
	IssueDate  string                `json:"issue_date"`
	Stats      *models.PipelineStats `json:"stats"`
	FinishedAt time.Time             `json:"finished_at"`
}

// NewProducer creates a new Kafka producer
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Async:                  false,
	}

	log.Info().
		Strs("brokers", brokers).
		Str("topic", topic).
		Msg("Kafka producer initialized")

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

// PublishPipelineResult publishes the final stats of a pipeline run, keyed by
// theme so runs for one issue stay in partition order.
func (p *Producer) PublishPipelineResult(ctx context.Context, theme string, issueDate time.Time, stats *models.PipelineStats) error {
	msg := PipelineResultMessage{
		Theme:      theme,
		IssueDate:  issueDate.Format("2006-01-02"),
		Stats:      stats,
		FinishedAt: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal pipeline result: %w", err)
	}

	kafkaMsg := kafka.Message{
		Key:   []byte(theme),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, kafkaMsg); err != nil {
		return fmt.Errorf("failed to write pipeline result to kafka: %w", err)
	}

	log.Info().
		Str("theme", theme).
		Str("topic", p.topic).
		Msg("Pipeline result published to Kafka")

	return nil
}

// Close closes the underlying writer
func (p *Producer) Close() error {
	return p.writer.Close()
}
