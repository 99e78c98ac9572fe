package reactagent

import (
	"errors"
	"fmt"

	"github.com/prathyushnallamothu/reactagent/llm"
)

var (
	// Define common errors for better error handling
	ErrNilAgent          = errors.New("agent cannot be nil")
	ErrEmptyQuestion     = errors.New("question cannot be empty")
	ErrLLMClientNotReady = errors.New("LLM client is not initialized")
	ErrNoChoicesInResp   = errors.New("no choices in LLM response")
	ErrNoMarker          = errors.New("response contains neither an action nor a final answer marker")
	ErrDuplicateTool     = errors.New("tool is already registered")
	ErrInvalidTool       = errors.New("tool must have a name and an execute function")
)

// IterationLimitError is returned when the loop performs its maximum number
// of reasoning cycles without reaching a final answer. It carries the
// partial transcript for diagnostics.
type IterationLimitError struct {
	MaxIterations int
	History       []llm.Message
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("no final answer after %d iterations", e.MaxIterations)
}
