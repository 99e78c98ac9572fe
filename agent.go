package reactagent

// Agent describes a single assistant: its model, its tool set, and any
// extra instructions appended to the generated system prompt.
type Agent struct {
	Name         string    // The name of the agent
	Model        string    // Model identifier sent to the LLM provider
	Instructions string    // Optional extra instructions for the system prompt
	Tools        *Registry // Tool set available to this agent
}

// NewAgent creates a new agent with an empty tool registry
func NewAgent(name, model string) *Agent {
	return &Agent{
		Name:  name,
		Model: model,
		Tools: NewRegistry(),
	}
}
