package model

// Real-time event names pushed to actors' live channels. Delivery is
// best-effort: a disconnected recipient misses the event and refetches
// state on reconnect.
const (
	EventNewBroadcast      = "new_broadcast"
	EventBroadcastUpdated  = "broadcast_updated"
	EventBroadcastAssisted = "broadcast_assisted"
	EventConversation      = "conversation"
	EventNewConversation   = "new_conversation"
	EventMessage           = "message"
	EventNewPrescription   = "new_prescription"
)

type Event struct {
	Name string      `json:"name"`
	From string      `json:"from,omitempty"`
	Data interface{} `json:"data"`
}
