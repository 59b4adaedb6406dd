package llm

import (
	"context"
)

// LLMClient generates a completion for a single prompt.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// jsonInstruction is sent as the system prompt; callers expect a JSON object back.
const jsonInstruction = "You are a linguistic annotation engine. Reply with a single JSON object and nothing else."
