package order

// Event is the payload pushed to every subscriber when an order is created
// or its status changes. The same JSON shape travels over the WebSocket
// stream and matches the REST list representation, so clients merge both
// into one cache.
//
// Events carry no sequence number and are never replayed: a subscriber that
// was disconnected while an event was published simply never sees it and
// must resync through the list endpoint.
type Event struct {
	Pieza         string `json:"pieza"`
	Guarda        string `json:"guarda"`
	Estado        string `json:"estado"`
	PosteRestante bool   `json:"poste_restante,omitempty"`
}

// NewEvent builds the broadcast payload for an order.
func NewEvent(o *Order) Event {
	return Event{
		Pieza:         o.Pieza(),
		Guarda:        o.Guarda(),
		Estado:        o.Status().String(),
		PosteRestante: o.PosteRestante(),
	}
}
