package models

// OutboundMessageRequest represents requests to send a message manually via the API.
type OutboundMessageRequest struct {
	To         string `json:"to" binding:"required"`
	Message    string `json:"message" binding:"required"`
	PreviewURL bool   `json:"preview_url"`
}

// ChatReply is the answer produced for a studio chat command.
type ChatReply struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Text renders the reply as a single chat message.
func (r ChatReply) Text() string {
	if r.Title == "" {
		return r.Message
	}
	return "*" + r.Title + "*\n" + r.Message
}
