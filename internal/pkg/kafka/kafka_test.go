package kafka

import (
	"Brightline/internal/pkg/logger"
	"Brightline/internal/pkg/notify"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	mu   sync.Mutex
	subs []*notify.Submission
}

func (r *recordingDispatcher) Dispatch(_ context.Context, sub *notify.Submission) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, sub)
}

type recordingSink struct {
	mu   sync.Mutex
	subs []*notify.Submission
}

func (r *recordingSink) Name() string { return "recording" }

func (r *recordingSink) Send(_ context.Context, sub *notify.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, sub)
	return nil
}

func TestDispatcher_PublishesEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event SubmissionEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.Submission.ID != "c-1" || event.TraceID != "trace-1" {
			return errors.New("unexpected event payload")
		}
		return nil
	})

	fallback := &recordingDispatcher{}
	d := NewDispatcher(producer, "submissions", fallback)

	ctx := logger.WithTraceID(context.Background(), "trace-1")
	d.Dispatch(ctx, &notify.Submission{Type: notify.TypeContact, ID: "c-1"})

	assert.Empty(t, fallback.subs)
	require.NoError(t, d.Close())
}

func TestDispatcher_FallsBackWhenPublishFails(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	fallback := &recordingDispatcher{}
	d := NewDispatcher(producer, "submissions", fallback)
	d.Dispatch(context.Background(), &notify.Submission{Type: notify.TypeBooking, ID: "b-1"})

	require.Len(t, fallback.subs, 1)
	assert.Equal(t, "b-1", fallback.subs[0].ID)
	require.NoError(t, d.Close())
}

func TestSubmissionHandler_Logic(t *testing.T) {
	sink := &recordingSink{}
	h := NewSubmissionHandler(notify.NewNotifier(sink))

	payload, err := json.Marshal(&SubmissionEvent{
		Submission: &notify.Submission{Type: notify.TypeContact, ID: "c-9", Name: "Jane"},
	})
	require.NoError(t, err)

	require.NoError(t, h.logic(context.Background(), &sarama.ConsumerMessage{Value: payload}))
	require.Len(t, sink.subs, 1)
	assert.Equal(t, "c-9", sink.subs[0].ID)

	assert.Error(t, h.logic(context.Background(), &sarama.ConsumerMessage{Value: []byte("{")}))
	assert.Error(t, h.logic(context.Background(), &sarama.ConsumerMessage{Value: []byte(`{}`)}))
}
