package webapi

// Update is one inbound chat update from the transport.
type Update struct {
	Message *Message `json:"message" validate:"required"`
}

// Message is the user-visible part of an update. Text may be empty when the
// user sent something that is not text; the handler substitutes the
// non-text sentinel in that case.
type Message struct {
	Text string `json:"text"`
	From *From  `json:"from" validate:"required"`
}

// From identifies the sender.
type From struct {
	ID        int64  `json:"id" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// Reply is the outbound response body.
type Reply struct {
	Text string `json:"text"`
}

// errorBody is the JSON shape for request-level failures.
type errorBody struct {
	Error string `json:"error"`
}
