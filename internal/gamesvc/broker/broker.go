package broker

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/wordrush/boggle-services/internal/comm"
)

// Broker publishes game events for downstream services (stats, leaderboard).
// Publishing is fire-and-forget: the game flow never fails because an event
// could not be delivered. A nil Conn disables publishing entirely.
type Broker struct {
	Conn *nats.Conn
}

func NewBroker(nc *nats.Conn) *Broker {
	return &Broker{Conn: nc}
}

// PublishGameFinalized emits a game-finalized event on the game events
// subject.
func (b *Broker) PublishGameFinalized(ev comm.GameFinalized) {
	if b == nil || b.Conn == nil {
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		log.Errorf("Error marshaling game finalized event %s", err)
		return
	}

	payload, err := json.Marshal(comm.Event{Type: comm.EventGameFinalized, Data: data})
	if err != nil {
		log.Errorf("Error marshaling event envelope %s", err)
		return
	}

	if err := b.Conn.Publish(comm.TopicGameEvents, payload); err != nil {
		log.Errorf("Error publishing game finalized event %s", err)
	}
}
