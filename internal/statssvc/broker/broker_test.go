package broker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nats-io/nats.go"

	"github.com/wordrush/boggle-services/internal/comm"
)

type recordedScore struct {
	username string
	points   int
}

type fakeScoreboard struct {
	calls []recordedScore
}

func (f *fakeScoreboard) RecordScore(ctx context.Context, username string, points int) error {
	f.calls = append(f.calls, recordedScore{username: username, points: points})
	return nil
}

func eventMsg(t *testing.T, eventType string, payload interface{}) *nats.Msg {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshaling payload: %v", err)
	}
	envelope, err := json.Marshal(comm.Event{Type: eventType, Data: data})
	if err != nil {
		t.Fatalf("marshaling envelope: %v", err)
	}
	return &nats.Msg{Subject: comm.TopicGameEvents, Data: envelope}
}

func TestHandleMessageGameFinalized(t *testing.T) {
	sb := &fakeScoreboard{}
	b := NewBroker(nil, sb)

	b.handleMessage(eventMsg(t, comm.EventGameFinalized, comm.GameFinalized{
		GameID:   "game-1",
		UserID:   "user-1",
		Username: "alice",
		Points:   22,
		Words:    1,
	}))

	if len(sb.calls) != 1 {
		t.Fatalf("RecordScore called %d times, want 1", len(sb.calls))
	}
	if sb.calls[0].username != "alice" || sb.calls[0].points != 22 {
		t.Errorf("RecordScore called with %+v, want alice/22", sb.calls[0])
	}
}

func TestHandleMessageIgnoresUnknownTypes(t *testing.T) {
	sb := &fakeScoreboard{}
	b := NewBroker(nil, sb)

	b.handleMessage(eventMsg(t, "something-else", map[string]string{"x": "y"}))

	if len(sb.calls) != 0 {
		t.Errorf("RecordScore called %d times for unknown event, want 0", len(sb.calls))
	}
}

func TestHandleMessageRejectsMissingUsername(t *testing.T) {
	sb := &fakeScoreboard{}
	b := NewBroker(nil, sb)

	b.handleMessage(eventMsg(t, comm.EventGameFinalized, comm.GameFinalized{
		GameID: "game-1",
		Points: 10,
	}))

	if len(sb.calls) != 0 {
		t.Errorf("RecordScore called %d times without username, want 0", len(sb.calls))
	}
}

func TestHandleMessageBadPayload(t *testing.T) {
	sb := &fakeScoreboard{}
	b := NewBroker(nil, sb)

	b.handleMessage(&nats.Msg{Subject: comm.TopicGameEvents, Data: []byte("not json")})

	if len(sb.calls) != 0 {
		t.Errorf("RecordScore called %d times for garbage payload, want 0", len(sb.calls))
	}
}
