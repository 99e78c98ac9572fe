package reactagent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prathyushnallamothu/reactagent/llm"
)

// MockLLM is a mock of the LLM client
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) CreateChatCompletion(ctx context.Context, req llm.ChatCompletionRequest) (llm.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(llm.ChatCompletionResponse), args.Error(1)
}

// respond wraps assistant text in a single-choice completion response
func respond(text string) llm.ChatCompletionResponse {
	return llm.ChatCompletionResponse{
		Choices: []llm.Choice{
			{Message: llm.Message{Role: llm.RoleAssistant, Content: text}},
		},
	}
}

func quietConfig(maxIterations int) *Config {
	config := DefaultConfig()
	config.MaxIterations = maxIterations
	config.Verbose = false
	return config
}

func testAgent(tools *Registry) *Agent {
	agent := NewAgent("test", "test-model")
	if tools != nil {
		agent.Tools = tools
	}
	return agent
}

// TestRunToolThenFinal tests a full reason/act/observe cycle followed by a
// final answer, and the per-cycle history growth invariant
func TestRunToolThenFinal(t *testing.T) {
	mockClient := new(MockLLM)
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond(`I'll calculate.`+"\n"+`ACTION: calc("2+2")`), nil).Once()
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond("FINAL ANSWER: 4"), nil).Once()

	registry := NewRegistry(Tool{
		Name:   "calc",
		Params: []string{"expression"},
		Execute: func(ctx context.Context, args []any) (string, error) {
			assert.Equal(t, []any{"2+2"}, args)
			return "Calculation result: 2+2 = 4", nil
		},
	})

	runner, err := NewRunner(mockClient, quietConfig(10))
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), testAgent(registry), "What is 2+2?")

	require.NoError(t, err)
	assert.Equal(t, "4", result.FinalAnswer)
	assert.Equal(t, 2, result.Iterations)
	// system + question, +2 for the tool cycle, +1 for the answer cycle
	require.Len(t, result.History, 5)
	assert.Equal(t, llm.RoleSystem, result.History[0].Role)
	assert.Equal(t, llm.RoleUser, result.History[1].Role)
	assert.Equal(t, llm.RoleAssistant, result.History[2].Role)
	assert.Equal(t, llm.RoleUser, result.History[3].Role)
	assert.Equal(t, "OBSERVATION: Calculation result: 2+2 = 4", result.History[3].Content)
	assert.Equal(t, llm.RoleAssistant, result.History[4].Role)
	mockClient.AssertExpectations(t)
}

// TestRunImmediateFinal tests a model that answers on its first turn
func TestRunImmediateFinal(t *testing.T) {
	mockClient := new(MockLLM)
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond("FINAL ANSWER: Paris"), nil).Once()

	runner, err := NewRunner(mockClient, quietConfig(10))
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), testAgent(nil), "Capital of France?")

	require.NoError(t, err)
	assert.Equal(t, "Paris", result.FinalAnswer)
	assert.Equal(t, 1, result.Iterations)
	assert.Len(t, result.History, 3)
}

// TestRunIterationLimit tests that a model requesting a tool on every turn
// exhausts the cap: with max iterations 1 it must yield the limit error,
// never an answer
func TestRunIterationLimit(t *testing.T) {
	mockClient := new(MockLLM)
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond(`ACTION: echo("again")`), nil)

	registry := NewRegistry(echoTool("echo"))

	runner, err := NewRunner(mockClient, quietConfig(1))
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), testAgent(registry), "loop forever")

	require.Nil(t, result)
	var limitErr *IterationLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 1, limitErr.MaxIterations)
	// The partial transcript is carried for diagnostics
	assert.Len(t, limitErr.History, 4)
	mockClient.AssertNumberOfCalls(t, "CreateChatCompletion", 1)
}

// TestRunToolFailureContinues tests that a failing tool produces an error
// observation and the loop proceeds to the next cycle
func TestRunToolFailureContinues(t *testing.T) {
	mockClient := new(MockLLM)
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond(`ACTION: flaky("x")`), nil).Once()
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond("FINAL ANSWER: the tool is down"), nil).Once()

	registry := NewRegistry(Tool{
		Name:   "flaky",
		Params: []string{"x"},
		Execute: func(ctx context.Context, args []any) (string, error) {
			return "", errors.New("connection refused")
		},
	})

	runner, err := NewRunner(mockClient, quietConfig(10))
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), testAgent(registry), "try the flaky tool")

	require.NoError(t, err)
	assert.Equal(t, "the tool is down", result.FinalAnswer)
	assert.Contains(t, result.History[3].Content, "OBSERVATION: ERROR")
	assert.Contains(t, result.History[3].Content, "connection refused")
}

// TestRunUnknownToolContinues tests that an unregistered tool name degrades
// to an observation rather than failing the session
func TestRunUnknownToolContinues(t *testing.T) {
	mockClient := new(MockLLM)
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond(`ACTION: nonexistent("x")`), nil).Once()
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond("FINAL ANSWER: no such tool"), nil).Once()

	runner, err := NewRunner(mockClient, quietConfig(10))
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), testAgent(NewRegistry(echoTool("echo"))), "use a made-up tool")

	require.NoError(t, err)
	assert.Contains(t, result.History[3].Content, "unknown tool")
}

// TestRunParseFailureNudges tests the fallback policy: a markerless turn
// appends a corrective user message and consumes the iteration
func TestRunParseFailureNudges(t *testing.T) {
	mockClient := new(MockLLM)
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond("Hmm, let me think about that."), nil).Once()
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond("FINAL ANSWER: done"), nil).Once()

	runner, err := NewRunner(mockClient, quietConfig(10))
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), testAgent(nil), "confuse the model")

	require.NoError(t, err)
	assert.Equal(t, "done", result.FinalAnswer)
	assert.Equal(t, 2, result.Iterations)
	require.Len(t, result.History, 5)
	assert.Equal(t, llm.RoleUser, result.History[3].Role)
	assert.Equal(t, nudgeMessage, result.History[3].Content)
}

// TestRunTransportErrorFatal tests that a model transport failure aborts
// the session without retries
func TestRunTransportErrorFatal(t *testing.T) {
	transportErr := errors.New("connection reset by peer")
	mockClient := new(MockLLM)
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(llm.ChatCompletionResponse{}, transportErr)

	runner, err := NewRunner(mockClient, quietConfig(10))
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), testAgent(nil), "anything")

	require.Nil(t, result)
	assert.ErrorIs(t, err, transportErr)
	mockClient.AssertNumberOfCalls(t, "CreateChatCompletion", 1)
}

// TestRunEmptyCompletion tests that a choiceless response is an error
func TestRunEmptyCompletion(t *testing.T) {
	mockClient := new(MockLLM)
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(llm.ChatCompletionResponse{}, nil)

	runner, err := NewRunner(mockClient, quietConfig(10))
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), testAgent(nil), "anything")

	assert.ErrorIs(t, err, ErrNoChoicesInResp)
}

// TestRunDeterministic tests that two runs against the same scripted client
// produce identical answers and history lengths
func TestRunDeterministic(t *testing.T) {
	script := func() *MockLLM {
		m := new(MockLLM)
		m.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(respond(`ACTION: echo("ping")`), nil).Once()
		m.On("CreateChatCompletion", mock.Anything, mock.Anything).
			Return(respond("FINAL ANSWER: pong"), nil).Once()
		return m
	}

	run := func() *RunResult {
		runner, err := NewRunner(script(), quietConfig(10))
		require.NoError(t, err)
		result, err := runner.Run(context.Background(), testAgent(NewRegistry(echoTool("echo"))), "ping?")
		require.NoError(t, err)
		return result
	}

	first := run()
	second := run()

	assert.Equal(t, first.FinalAnswer, second.FinalAnswer)
	assert.Equal(t, first.Iterations, second.Iterations)
	assert.Equal(t, len(first.History), len(second.History))
}

// TestRunStepTrace tests the order and kinds of emitted trace steps
func TestRunStepTrace(t *testing.T) {
	mockClient := new(MockLLM)
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond(`ACTION: echo("hi")`), nil).Once()
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(respond("FINAL ANSWER: hi"), nil).Once()

	var kinds []StepKind
	config := quietConfig(10)
	config.OnStep = func(step Step) {
		kinds = append(kinds, step.Kind)
	}

	runner, err := NewRunner(mockClient, config)
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), testAgent(NewRegistry(echoTool("echo"))), "say hi")

	require.NoError(t, err)
	assert.Equal(t, []StepKind{StepThought, StepAction, StepObservation, StepThought, StepAnswer}, kinds)
}

// TestNewRunnerValidation tests constructor argument checks
func TestNewRunnerValidation(t *testing.T) {
	_, err := NewRunner(nil, nil)
	assert.ErrorIs(t, err, ErrLLMClientNotReady)

	_, err = NewRunner(new(MockLLM), &Config{MaxIterations: 0})
	assert.Error(t, err)

	runner, err := NewRunner(new(MockLLM), nil)
	require.NoError(t, err)
	assert.Equal(t, 10, runner.config.MaxIterations)
}

// TestRunInputValidation tests agent and question checks
func TestRunInputValidation(t *testing.T) {
	runner, err := NewRunner(new(MockLLM), quietConfig(10))
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), nil, "hello")
	assert.ErrorIs(t, err, ErrNilAgent)

	_, err = runner.Run(context.Background(), testAgent(nil), "")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
}
