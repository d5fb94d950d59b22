package chat

import "time"

// Citation is a literal document fragment a message refers to. ID is
// unique within its message; Page is a hint shown to the user when the
// fragment cannot be located, never used for navigation.
type Citation struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Page int    `json:"page"`
}

// Message is one transcript entry. Immutable after creation.
type Message struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	IsUser    bool       `json:"is_user"`
	Timestamp time.Time  `json:"timestamp"`
	Citations []Citation `json:"citations,omitempty"`
}

// Citation returns the citation with the given id, or nil.
func (m *Message) Citation(id int) *Citation {
	for i := range m.Citations {
		if m.Citations[i].ID == id {
			return &m.Citations[i]
		}
	}
	return nil
}

// Notice is the user-facing report for a citation whose text could not be
// found in any rendered text layer.
type Notice struct {
	Text string `json:"text"`
	Page int    `json:"page"`
}
