package models

// AssistAction identifies one of the fixed AI operations the proxy supports.
type AssistAction string

// The complete set of supported actions. Anything else is rejected before
// any outbound call is made.
const (
	ActionSummarize      AssistAction = "summarize"
	ActionRewriteFormal  AssistAction = "rewrite_formal"
	ActionRewriteConcise AssistAction = "rewrite_concise"
	ActionGenerateIdeas  AssistAction = "generate_ideas"
)

// AssistRequest is the payload of a proxy invocation.
type AssistRequest struct {
	Action  AssistAction `json:"action"`
	Content string       `json:"content"`
	NoteID  string       `json:"noteId"`
}

// AssistResponse carries the generated text back to the caller.
type AssistResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the uniform error body returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
