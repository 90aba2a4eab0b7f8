package model

// Message is a chat transcript entry. Messages live in page memory only,
// the server never persists them.
type Message struct {
	ID     string   `json:"id"`
	Text   string   `json:"text"`
	IsBot  bool     `json:"isBot"`
	Events []*Event `json:"events,omitempty"`
}
