package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestKafkaEmailProducer_Send(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaEmailProducer{w: w, log: zap.NewNop(), timeout: time.Second}

	err := p.Send(context.Background(), EmailMessage{
		To:       "ann@example.com",
		Subject:  "hi",
		Template: "welcome",
		Data:     map[string]any{"name": "Ann"},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "ann@example.com", string(w.msgs[0].Key))

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, "welcome", got["template"])
	assert.Equal(t, "ann@example.com", got["to"])
}

func TestKafkaEmailProducer_SendError(t *testing.T) {
	p := &KafkaEmailProducer{w: &fakeWriter{err: errors.New("broker down")}, log: zap.NewNop(), timeout: time.Second}
	assert.Error(t, p.Send(context.Background(), EmailMessage{To: "x@example.com"}))
}
