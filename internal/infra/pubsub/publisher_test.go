package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pharmaduty/config"
	"pharmaduty/internal/domain/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.DutyEvent {
	at := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)

	return &service.DutyEvent{
		RequestID:    "req-1",
		EventID:      "evt-1",
		Type:         service.DutyEventScheduled,
		PharmacyID:   "pharmacy-1",
		DutyPeriodID: "period-1",
		StartAt:      at,
		EndAt:        at.Add(12 * time.Hour),
		OccurredAt:   at.Add(-time.Hour),
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	t.Parallel()

	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishDutyEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "duty.scheduled", received.Message.Attributes["event_type"])
	assert.Equal(t, "pharmacy-1", received.Message.Attributes["pharmacy_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.DutyEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "period-1", event.DutyPeriodID)
	assert.True(t, event.StartAt.Equal(sampleEvent().StartAt))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishDutyEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

type recordingWriter struct {
	messages []kafka.Message
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_KeysByPharmacy(t *testing.T) {
	t.Parallel()

	writer := &recordingWriter{}
	publisher := &kafkaPublisher{writer: writer, logger: discardLogger()}

	require.NoError(t, publisher.PublishDutyEvent(context.Background(), sampleEvent()))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "pharmacy-1", string(msg.Key))

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "evt-1", headers["event_id"])
	assert.Equal(t, "req-1", headers["request_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		want    any
	}{
		{name: "disabled", cfg: nil, want: &noopPublisher{}},
		{name: "empty provider", cfg: &config.PubSubConfig{}, want: &noopPublisher{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999"}, want: &localHTTPPublisher{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "kafka", cfg: &config.PubSubConfig{Provider: "kafka", Brokers: "localhost:9092", TopicID: "duty-events"}, want: &kafkaPublisher{}},
		{name: "kafka without brokers", cfg: &config.PubSubConfig{Provider: "kafka", TopicID: "duty-events"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
