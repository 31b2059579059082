package impl

import (
	"fmt"
	"time"

	"huddle/internal/domain/service"

	"github.com/pkg/errors"
)

// sessionEventTTL is how long the gateway keeps a session push for an
// offline device. A hangout announcement is useless hours later.
const sessionEventTTL = 2 * time.Hour

// BuildPushMessage renders a notification event into the transport
// independent push message delivered to every audience device. It is a
// pure function: same event in, same message out, no I/O.
func BuildPushMessage(event *service.NotificationEvent) (*service.PushMessage, error) {
	switch event.Type {
	case service.EventNewSession:
		title := event.SessionTitle
		if title == "" {
			title = "新的揪團"
		}
		body := event.Message
		if body == "" {
			body = fmt.Sprintf("%s 發起了揪團", event.ActorName)
		}

		return &service.PushMessage{
			Type: service.PushTypeAlert,
			Alert: &service.Alert{
				Title:    title,
				Subtitle: event.ActorName,
				Body:     body,
			},
			Data:       eventData(event),
			Sound:      "default",
			Priority:   service.PriorityHigh,
			CollapseID: event.SessionID,
			Expiration: time.Now().Add(sessionEventTTL),
		}, nil

	case service.EventSessionEnded:
		// Silent refresh: clients drop the session from their feed
		// without bothering the user.
		return &service.PushMessage{
			Type:       service.PushTypeBackground,
			Data:       eventData(event),
			Priority:   service.PriorityLow,
			CollapseID: event.SessionID,
		}, nil

	case service.EventSessionResponse:
		body, err := responseBody(event)
		if err != nil {
			return nil, err
		}

		return &service.PushMessage{
			Type: service.PushTypeAlert,
			Alert: &service.Alert{
				Title: "揪團回覆",
				Body:  body,
			},
			Data:       eventData(event),
			Sound:      "default",
			Priority:   service.PriorityHigh,
			CollapseID: event.SessionID,
		}, nil

	case service.EventFriendRequest:
		badge := 1

		return &service.PushMessage{
			Type: service.PushTypeAlert,
			Alert: &service.Alert{
				Title: "交友邀請",
				Body:  fmt.Sprintf("%s 想加你為好友", event.ActorName),
			},
			Data:     eventData(event),
			Badge:    &badge,
			Sound:    "default",
			Priority: service.PriorityHigh,
		}, nil

	case service.EventFriendAccepted:
		return &service.PushMessage{
			Type: service.PushTypeAlert,
			Alert: &service.Alert{
				Title: "交友邀請已接受",
				Body:  fmt.Sprintf("%s 成為你的好友了", event.ActorName),
			},
			Data:     eventData(event),
			Sound:    "default",
			Priority: service.PriorityHigh,
		}, nil

	default:
		return nil, errors.Errorf("unknown notification event type: %s", event.Type)
	}
}

func responseBody(event *service.NotificationEvent) (string, error) {
	switch event.ResponseKind {
	case "join":
		return fmt.Sprintf("%s 想加入「%s」", event.ActorName, event.SessionTitle), nil
	case "decline":
		return fmt.Sprintf("%s 這次不參加「%s」", event.ActorName, event.SessionTitle), nil
	case "later":
		return fmt.Sprintf("%s 晚點再決定「%s」", event.ActorName, event.SessionTitle), nil
	default:
		return "", errors.Errorf("unknown session response kind: %s", event.ResponseKind)
	}
}

// eventData builds the custom payload clients use for deep linking.
// Empty fields are omitted so the payload stays small.
func eventData(event *service.NotificationEvent) map[string]string {
	data := map[string]string{
		"event_id": event.EventID,
		"type":     event.Type,
		"actor_id": event.ActorID,
	}
	if event.SessionID != "" {
		data["session_id"] = event.SessionID
	}
	if event.ResponseKind != "" {
		data["response_kind"] = event.ResponseKind
	}

	return data
}
