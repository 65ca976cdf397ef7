package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type EmailMessage struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaEmailProducer struct {
	w       messageWriter
	log     *zap.Logger
	timeout time.Duration
}

func NewKafkaEmailProducer(brokers []string, topic string, log *zap.Logger) *KafkaEmailProducer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}
	return &KafkaEmailProducer{w: w, log: log, timeout: 5 * time.Second}
}

func (p *KafkaEmailProducer) Send(ctx context.Context, msg EmailMessage) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()
	if err := p.w.WriteMessages(ctx, kafka.Message{Key: []byte(msg.To), Value: value}); err != nil {
		return err
	}
	p.log.Debug("email queued", zap.String("to", msg.To), zap.String("template", msg.Template))
	return nil
}

func (p *KafkaEmailProducer) Close() error {
	return p.w.Close()
}

// Nop drops every message. Used when no brokers are configured.
type Nop struct{}

func (Nop) Send(context.Context, EmailMessage) error { return nil }
