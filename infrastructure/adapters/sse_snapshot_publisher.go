package adapters

import (
	"encoding/json"
	"generate-storyboard-api/application/ports/outbound"
	"generate-storyboard-api/domain"
	"github.com/donovanhide/eventsource"
	"github.com/google/uuid"
	"net/http"
)

const (
	snapshotChannel   = "storyboard"
	snapshotEventType = "snapshot"
)

type snapshotEvent struct {
	id      string
	payload string
}

func (e snapshotEvent) Id() string    { return e.id }
func (e snapshotEvent) Event() string { return snapshotEventType }
func (e snapshotEvent) Data() string  { return e.payload }

type SSESnapshotPublisher struct {
	logger outbound.LoggerPort
	server *eventsource.Server
}

var _ outbound.SnapshotPublisherPort = (*SSESnapshotPublisher)(nil)

func NewSSESnapshotPublisher(logger outbound.LoggerPort) *SSESnapshotPublisher {
	server := eventsource.NewServer()
	server.AllowCORS = true
	return &SSESnapshotPublisher{
		logger: logger,
		server: server,
	}
}

func (p *SSESnapshotPublisher) Publish(snapshot domain.StoryboardSnapshot) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		p.logger.Error(err, "Failed to marshal the storyboard snapshot")
		return
	}
	p.server.Publish([]string{snapshotChannel}, snapshotEvent{
		id:      uuid.NewString(),
		payload: string(payload),
	})
}

func (p *SSESnapshotPublisher) StreamHandler() http.HandlerFunc {
	return p.server.Handler(snapshotChannel)
}

func (p *SSESnapshotPublisher) Close() {
	p.server.Close()
}
