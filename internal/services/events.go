package services

import (
	"errors"
	"time"

	"storefront/internal/apperror"
	"storefront/internal/repositories"

	"github.com/sirupsen/logrus"
)

// EventPublisher delivers resource lifecycle events, e.g. to RabbitMQ.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// Event is the body of every published message.
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data"`
}

// notifier publishes events on a best effort basis: a failed publish is
// logged and never fails the request that triggered it.
type notifier struct {
	events EventPublisher
	log    *logrus.Logger
}

func newNotifier(events EventPublisher, log *logrus.Logger) notifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return notifier{events: events, log: log}
}

func (n notifier) notify(eventType string, data interface{}) {
	if n.events == nil {
		return
	}
	event := Event{Type: eventType, OccurredAt: time.Now().UTC(), Data: data}
	if err := n.events.Publish(eventType, event); err != nil {
		n.log.WithError(err).WithField("event", eventType).Warn("failed to publish event")
		return
	}
	n.log.WithField("event", eventType).Debug("event published")
}

// notFound turns a repository miss into a client-facing not-found error.
func notFound(err error, msg string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return &apperror.Error{Kind: apperror.KindNotFound, Message: msg, Err: err}
	}
	return err
}
