package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stagelight/contact-gateway/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testSubmission() models.ContactSubmission {
	return models.ContactSubmission{
		Name:     "Taro",
		Email:    "taro@example.com",
		Category: models.CategoryTicket,
		Message:  "hello",
	}
}

type stubSender struct {
	name  string
	err   error
	block chan struct{}

	mu    sync.Mutex
	calls int
}

func (s *stubSender) Channel() string { return s.name }

func (s *stubSender) Send(ctx context.Context, submission models.ContactSubmission) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.block != nil {
		<-s.block
	}
	return s.err
}

func (s *stubSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestDispatchAggregation(t *testing.T) {
	failure := errors.New("upstream error")

	cases := []struct {
		name        string
		errs        []error
		wantOverall bool
	}{
		{"all succeed", []error{nil, nil, nil}, true},
		{"one succeeds", []error{nil, failure, failure}, true},
		{"all fail", []error{failure, failure, failure}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			senders := make([]ChannelSender, len(tc.errs))
			for i, err := range tc.errs {
				senders[i] = &stubSender{name: "channel", err: err}
			}

			result := NewDispatcher(senders, testLogger()).Dispatch(context.Background(), testSubmission())
			require.Equal(t, tc.wantOverall, result.OverallSuccess())
			require.Len(t, result.Outcomes, len(tc.errs))
		})
	}
}

func TestDispatchInvokesEverySenderOnce(t *testing.T) {
	first := &stubSender{name: "email_operator"}
	second := &stubSender{name: "email_ack", err: errors.New("boom")}
	third := &stubSender{name: "line"}

	dispatcher := NewDispatcher([]ChannelSender{first, second, third}, testLogger())
	result := dispatcher.Dispatch(context.Background(), testSubmission())

	require.Equal(t, 1, first.callCount())
	require.Equal(t, 1, second.callCount())
	require.Equal(t, 1, third.callCount())
	require.True(t, result.OverallSuccess())

	failures := result.Failures()
	require.Len(t, failures, 1)
	require.Equal(t, "email_ack", failures[0].Channel)
	require.Equal(t, "boom", failures[0].Reason)
}

func TestDispatchRunsSendersConcurrently(t *testing.T) {
	gate := make(chan struct{})
	blocked := []ChannelSender{
		&stubSender{name: "a", block: gate},
		&stubSender{name: "b", block: gate},
		&stubSender{name: "c", block: gate},
	}

	dispatcher := NewDispatcher(blocked, testLogger())

	done := make(chan models.DispatchResult, 1)
	go func() {
		done <- dispatcher.Dispatch(context.Background(), testSubmission())
	}()

	// All three must be in flight before any is released; a sequential
	// coordinator would deadlock here.
	require.Eventually(t, func() bool {
		for _, sender := range blocked {
			if sender.(*stubSender).callCount() == 0 {
				return false
			}
		}
		return true
	}, time.Second, 5*time.Millisecond)

	close(gate)

	select {
	case result := <-done:
		require.True(t, result.OverallSuccess())
	case <-time.After(time.Second):
		t.Fatal("dispatch did not settle")
	}
}

func TestDispatchNoRetry(t *testing.T) {
	failing := &stubSender{name: "line", err: errors.New("push failed")}
	dispatcher := NewDispatcher([]ChannelSender{failing}, testLogger())

	dispatcher.Dispatch(context.Background(), testSubmission())
	require.Equal(t, 1, failing.callCount())

	// Replaying the same submission triggers fresh calls, no dedup.
	dispatcher.Dispatch(context.Background(), testSubmission())
	require.Equal(t, 2, failing.callCount())
}
