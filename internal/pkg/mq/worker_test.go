package mq

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	name    string
	runs    int
	payload []byte
	err     error
}

func (r *fakeRunner) Name() string { return r.name }

func (r *fakeRunner) Run(_ context.Context, payload []byte) error {
	r.runs++
	r.payload = payload
	return r.err
}

func encodeJobMessage(t *testing.T, msg JobMessage) *sarama.ConsumerMessage {
	t.Helper()
	value, err := json.Marshal(msg)
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Value: value}
}

func TestJobDispatchHandler_Dispatch(t *testing.T) {
	runner := &fakeRunner{name: "insight.weekly"}
	h := &jobDispatchHandler{registry: map[string]Runner{runner.name: runner}}

	payload := json.RawMessage(`{"week":35}`)
	h.dispatch(context.Background(), encodeJobMessage(t, JobMessage{Job: "insight.weekly", Payload: payload}))

	assert.Equal(t, 1, runner.runs)
	assert.JSONEq(t, `{"week":35}`, string(runner.payload))
}

func TestJobDispatchHandler_UnknownJob(t *testing.T) {
	runner := &fakeRunner{name: "insight.weekly"}
	h := &jobDispatchHandler{registry: map[string]Runner{runner.name: runner}}

	h.dispatch(context.Background(), encodeJobMessage(t, JobMessage{Job: "no.such.job"}))
	assert.Zero(t, runner.runs)
}

func TestJobDispatchHandler_MalformedMessage(t *testing.T) {
	runner := &fakeRunner{name: "insight.weekly"}
	h := &jobDispatchHandler{registry: map[string]Runner{runner.name: runner}}

	h.dispatch(context.Background(), &sarama.ConsumerMessage{Value: []byte("not json")})
	assert.Zero(t, runner.runs)
}

func TestJobDispatchHandler_RunErrorDoesNotPanic(t *testing.T) {
	runner := &fakeRunner{name: "sync.daily", err: errors.New("boom")}
	h := &jobDispatchHandler{registry: map[string]Runner{runner.name: runner}}

	h.dispatch(context.Background(), encodeJobMessage(t, JobMessage{Job: "sync.daily"}))
	assert.Equal(t, 1, runner.runs)
}
