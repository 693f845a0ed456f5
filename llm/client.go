package llm

import "context"

// CompletionRequest describes a single completion call. ForceJSON asks
// the model to emit a bare JSON object as its entire response.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	ForceJSON   bool
}

// Client is the language-model capability used by the extraction and
// reminder services. Implementations perform exactly one attempt per
// call; retry policy is the caller's decision (the call sites here
// never retry).
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
