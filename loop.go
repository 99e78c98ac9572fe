package reactagent

import (
	"context"
	"fmt"

	"github.com/prathyushnallamothu/reactagent/llm"
)

// nudgeMessage is appended as a synthetic user message when a model turn
// matches neither marker, steering the model back onto the protocol. The
// failed turn still consumes an iteration, so a model that never recovers
// exhausts the cap rather than looping silently.
const nudgeMessage = `Please either use a tool (ACTION: tool_name(args)) or provide a FINAL ANSWER.`

// Runner drives the reason/act/observe loop for one question at a time.
// A Runner is stateless between runs; each Run owns its own message
// history, so independent sessions may share one Runner concurrently as
// long as the LLM client and tools tolerate concurrent calls.
type Runner struct {
	client llm.LLM
	config *Config
}

// NewRunner creates a Runner around an LLM client
func NewRunner(client llm.LLM, config *Config) (*Runner, error) {
	if client == nil {
		return nil, ErrLLMClientNotReady
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.MaxIterations <= 0 {
		return nil, fmt.Errorf("max iterations must be positive, got %d", config.MaxIterations)
	}
	return &Runner{client: client, config: config}, nil
}

// Run answers one user question. It seeds the history with the system
// prompt and the question, then alternates model inference, response
// parsing, and tool dispatch until the model produces a final answer or
// the iteration cap is hit. Model transport failures are fatal for the
// session and are returned immediately, never retried. Exhaustion returns
// an *IterationLimitError carrying the partial transcript.
func (r *Runner) Run(ctx context.Context, agent *Agent, question string) (*RunResult, error) {
	if agent == nil {
		return nil, ErrNilAgent
	}
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	tools := agent.Tools
	if tools == nil {
		tools = NewRegistry()
	}

	model := agent.Model
	if model == "" {
		model = r.config.DefaultModel
	}

	history := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt(agent)},
		{Role: llm.RoleUser, Content: question},
	}

	for iteration := 1; iteration <= r.config.MaxIterations; iteration++ {
		raw, err := r.complete(ctx, model, history)
		if err != nil {
			return nil, fmt.Errorf("chat completion failed: %w", err)
		}

		// Each cycle appends the assistant turn first; a tool cycle or a
		// nudge adds exactly one more message, so history grows by 1 or 2.
		history = append(history, llm.Message{Role: llm.RoleAssistant, Content: raw})
		r.emit(Step{Iteration: iteration, Kind: StepThought, Text: raw})

		parsed, perr := ParseResponse(raw)
		if perr != nil {
			history = append(history, llm.Message{Role: llm.RoleUser, Content: nudgeMessage})
			continue
		}

		if parsed.IsFinal {
			r.emit(Step{Iteration: iteration, Kind: StepAnswer, Text: parsed.FinalAnswer})
			return &RunResult{
				FinalAnswer: parsed.FinalAnswer,
				Iterations:  iteration,
				History:     history,
			}, nil
		}

		call := *parsed.ToolCall
		r.emit(Step{Iteration: iteration, Kind: StepAction, Tool: call.Name, Args: call.Args})

		obs := tools.Invoke(ctx, call)
		r.emit(Step{Iteration: iteration, Kind: StepObservation, Tool: obs.Tool, Text: obs.Text})

		history = append(history, llm.Message{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("OBSERVATION: %s", obs.Text),
		})
	}

	return nil, &IterationLimitError{
		MaxIterations: r.config.MaxIterations,
		History:       history,
	}
}

// complete performs one blocking model call and returns the assistant text
func (r *Runner) complete(ctx context.Context, model string, history []llm.Message) (string, error) {
	requestCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && r.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		requestCtx, cancel = context.WithTimeout(ctx, r.config.RequestTimeout)
		defer cancel()
	}

	resp, err := r.client.CreateChatCompletion(requestCtx, llm.ChatCompletionRequest{
		Model:       model,
		Messages:    history,
		Temperature: r.config.Temperature,
		MaxTokens:   r.config.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoicesInResp
	}
	return resp.Choices[0].Message.Content, nil
}

func (r *Runner) emit(step Step) {
	if r.config.Verbose {
		PrintStep(step)
	}
	if r.config.OnStep != nil {
		r.config.OnStep(step)
	}
}
