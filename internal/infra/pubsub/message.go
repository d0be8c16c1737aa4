package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"autoserv/internal/domain/constants"
	"autoserv/internal/domain/service"
	"autoserv/internal/errors"
)

// encodeAccountRegistered returns the message payload and the attributes
// consumers filter on. Both publishers emit the same envelope.
func encodeAccountRegistered(event *service.AccountRegisteredEvent) ([]byte, map[string]string, error) {
	if event == nil {
		return nil, nil, errors.New("nil account registered event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type": constants.EventTypeAccountRegistered,
		"account_id": event.AccountID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}

// DecodeAccountRegistered reads an event back out of a push envelope.
// Messages tagged with another event type are rejected.
func DecodeAccountRegistered(push *PushMessage) (*service.AccountRegisteredEvent, error) {
	if push == nil {
		return nil, errors.New("nil push message")
	}
	if eventType, ok := push.Message.Attributes["event_type"]; ok && eventType != constants.EventTypeAccountRegistered {
		return nil, errors.Errorf("unexpected event type %q", eventType)
	}

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.AccountRegisteredEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse account registered event")
	}

	if event.RequestID == "" {
		event.RequestID = push.Message.Attributes["request_id"]
	}

	return &event, nil
}
