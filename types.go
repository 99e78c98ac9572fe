package reactagent

import (
	"github.com/prathyushnallamothu/reactagent/llm"
)

// ToolCall is a single tool invocation parsed from a model response.
// Arguments are positional and map to the registered tool's parameter order.
type ToolCall struct {
	Name string // Name of the tool to invoke
	Args []any  // Positional arguments, each a string or float64
}

// Observation is the textual result of executing a ToolCall. Tool failures
// are folded into Text rather than surfaced as errors, so the model can
// read them and adapt on the next turn.
type Observation struct {
	Tool string `json:"tool"` // Name of the tool that produced the text
	Text string `json:"text"` // Result or error description
}

// StepKind identifies the phase of the loop a Step was emitted from
type StepKind string

const (
	StepThought     StepKind = "thought"     // Raw model response for one turn
	StepAction      StepKind = "action"      // Parsed tool call about to be dispatched
	StepObservation StepKind = "observation" // Tool result fed back into the context
	StepAnswer      StepKind = "answer"      // Final answer, loop terminates
)

// Step is one entry in the run trace. Steps are reported through
// Config.OnStep and the verbose printer as the loop progresses.
type Step struct {
	Iteration int      `json:"iteration"`
	Kind      StepKind `json:"kind"`
	Tool      string   `json:"tool,omitempty"`
	Args      []any    `json:"args,omitempty"`
	Text      string   `json:"text"`
}

// RunResult is the terminal value of a successful run
type RunResult struct {
	FinalAnswer string        // Answer text following the final-answer marker
	Iterations  int           // Number of reasoning cycles consumed
	History     []llm.Message // Complete transcript including the system prompt
}
