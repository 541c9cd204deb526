package broker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/wordrush/boggle-services/internal/comm"
)

// Scoreboard is the slice of the leaderboard store the broker needs.
type Scoreboard interface {
	RecordScore(ctx context.Context, username string, points int) error
}

// Broker consumes game events from NATS and folds them into the
// leaderboard.
type Broker struct {
	Conn  *nats.Conn
	store Scoreboard
}

func NewBroker(nc *nats.Conn, store Scoreboard) *Broker {
	return &Broker{Conn: nc, store: store}
}

// handles message coming from game services
func (b *Broker) handleMessage(msgNat *nats.Msg) {
	msg := &comm.Event{}
	err := json.Unmarshal(msgNat.Data, msg)
	if err != nil {
		log.Errorf("Error nats message %s", err)
		return
	}

	switch msg.Type {
	case comm.EventGameFinalized:
		ev := comm.GameFinalized{}
		err := json.Unmarshal(msg.Data, &ev)
		if err != nil {
			log.Errorf("Error decoding game finalized event: %s", err)
			return
		}
		if ev.Username == "" {
			log.Errorf("Error game finalized event without username, game %s", ev.GameID)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := b.store.RecordScore(ctx, ev.Username, ev.Points); err != nil {
			log.Errorf("Error recording score for %s: %s", ev.Username, err)
		}
	default:
		log.Warnf("unhandled game event type %q", msg.Type)
	}
}

// SubscribeGameEvents joins the stats queue group on the game events
// subject so multiple instances share the stream.
func (b *Broker) SubscribeGameEvents(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.QueueSubscribe(topic, "statssvc", b.handleMessage)
	if err != nil {
		return nil, err
	}
	return sub, nil
}
