package notify

import (
	"Brightline/internal/api/config"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcSink struct {
	name string
	fn   func(ctx context.Context, sub *Submission) error
}

func (s *funcSink) Name() string { return s.name }

func (s *funcSink) Send(ctx context.Context, sub *Submission) error { return s.fn(ctx, sub) }

func TestNotifier_FailureDoesNotBlockOthers(t *testing.T) {
	var calls atomic.Int32
	ok := &funcSink{name: "ok", fn: func(context.Context, *Submission) error {
		calls.Add(1)
		return nil
	}}
	bad := &funcSink{name: "bad", fn: func(context.Context, *Submission) error {
		calls.Add(1)
		return errors.New("boom")
	}}
	panicky := &funcSink{name: "panicky", fn: func(context.Context, *Submission) error {
		calls.Add(1)
		panic("unexpected")
	}}

	report := NewNotifier(bad, ok, panicky).Notify(context.Background(), contactSubmission())

	assert.EqualValues(t, 3, calls.Load())
	require.Len(t, report.Results, 3)
	assert.Equal(t, 1, report.Delivered())
	failed := report.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "bad", failed[0].Sink)
	assert.Equal(t, "panicky", failed[1].Sink)
}

func TestNotifier_RunsSinksConcurrently(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(2)
	barrier := func(context.Context, *Submission) error {
		wg.Done()
		done := make(chan struct{})
		go func() { wg.Wait(); close(done) }()
		select {
		case <-done:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("sinks were not run concurrently")
		}
	}

	report := NewNotifier(&funcSink{name: "a", fn: barrier}, &funcSink{name: "b", fn: barrier}).
		Notify(context.Background(), bookingSubmission())
	assert.Empty(t, report.Failed())
}

func TestNotifier_NoSinks(t *testing.T) {
	report := NewNotifier().Notify(context.Background(), bookingSubmission())
	assert.Empty(t, report.Results)
	assert.Empty(t, report.Failed())
}

func TestSinksFromConfig_OnlyConfigured(t *testing.T) {
	client := NewHTTPClient(time.Second)

	assert.Empty(t, SinksFromConfig(config.NotifyConfig{}, client))

	sinks := SinksFromConfig(config.NotifyConfig{
		SlackWebhookURL:   "http://slack",
		DiscordWebhookURL: "http://discord",
		ResendAPIKey:      "key",
	}, client)
	names := NewNotifier(sinks...).SinkNames()
	// resend 缺少收发件人时不启用
	assert.Equal(t, []string{"slack", "discord"}, names)
}

func TestWebhookSinks_DeliverFormattedPayloads(t *testing.T) {
	var mu sync.Mutex
	bodies := map[string]map[string]any{}
	headers := map[string]http.Header{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		mu.Lock()
		bodies[r.URL.Path] = body
		headers[r.URL.Path] = r.Header.Clone()
		mu.Unlock()
		if r.URL.Path == "/zapier" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := config.NotifyConfig{
		DiscordWebhookURL: srv.URL + "/discord",
		SlackWebhookURL:   srv.URL + "/slack",
		ZapierWebhookURL:  srv.URL + "/zapier",
		MakeWebhookURL:    srv.URL + "/make",
		EmailWebhookURL:   srv.URL + "/email",
		GoogleScriptURL:   srv.URL + "/sheets",
		AdminEmail:        "owner@agency.com",
		ResendAPIKey:      "re_key",
		ResendAPIURL:      srv.URL + "/resend",
		EmailFrom:         "noreply@agency.com",
	}
	n := NewNotifier(SinksFromConfig(cfg, NewHTTPClient(2*time.Second))...)
	require.Len(t, n.SinkNames(), 7)

	report := n.Notify(context.Background(), contactSubmission())

	require.Len(t, report.Failed(), 1)
	assert.Equal(t, "zapier", report.Failed()[0].Sink)
	assert.Equal(t, 6, report.Delivered())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, SlackText(contactSubmission()), bodies["/slack"]["text"])
	assert.Equal(t, "owner@agency.com", bodies["/email"]["to"])
	assert.Equal(t, "Contacts", bodies["/sheets"]["sheet"])
	assert.Equal(t, "contact", bodies["/make"]["type"])
	assert.Equal(t, "2025-05-20T09:30:00Z", bodies["/make"]["submitted_at"])
	assert.Equal(t, "Bearer re_key", headers["/resend"].Get("Authorization"))
	assert.Equal(t, []any{"owner@agency.com"}, bodies["/resend"]["to"])

	embeds, ok := bodies["/discord"]["embeds"].([]any)
	require.True(t, ok)
	require.Len(t, embeds, 1)
	assert.EqualValues(t, ContactColor, embeds[0].(map[string]any)["color"])
}

func TestAsyncDispatcher_DetachesFromRequestContext(t *testing.T) {
	var got atomic.Value
	sink := &funcSink{name: "rec", fn: func(ctx context.Context, sub *Submission) error {
		got.Store(ctx.Err() == nil)
		return nil
	}}
	d := NewAsyncDispatcher(NewNotifier(sink), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Dispatch(ctx, contactSubmission())
	d.Wait()

	assert.Equal(t, true, got.Load())
}
