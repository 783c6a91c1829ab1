package model

// PubSubMessage is the payload of a Pub/Sub event. Data is kept as the raw
// base64 text so decoding failures surface to the caller.
type PubSubMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId,omitempty"`
	PublishTime string            `json:"publishTime,omitempty"`
}

// PushRequest is the body Pub/Sub sends to a push subscription endpoint.
type PushRequest struct {
	Message      PubSubMessage `json:"message"`
	Subscription string        `json:"subscription"`
}
