// Command smartagent answers questions with a tool-using ReAct agent.
// Run it with a question, without arguments for an interactive session,
// or with "serve" to start the web UI.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/prathyushnallamothu/reactagent"
	"github.com/prathyushnallamothu/reactagent/llm"
	"github.com/prathyushnallamothu/reactagent/tools"
	"github.com/prathyushnallamothu/reactagent/webapp"
)

const banner = `Smart Utility Agent — a tool-using ReAct (Reason + Act + Observe) agent.

Available tools: calculator, weather, earthquakes (USGS), arXiv search,
currency exchange.

Type 'exit' or 'quit' to end the session, 'examples' for example questions.`

const exampleQuestions = `Example questions:

1. "If it's 15% colder tomorrow than today in Boise, what will the temperature be?"
2. "Are there any recent earthquakes near California with magnitude above 4?"
3. "Find a recent paper on transformers and summarize it briefly"
4. "Convert 200 USD to EUR and tell me if it's enough for a weekend trip"
5. "Calculate 15% tip on a $87.50 restaurant bill"`

var (
	flagModel         string
	flagProvider      string
	flagMaxIterations int
	flagQuiet         bool
	flagAddr          string
)

var rootCmd = &cobra.Command{
	Use:   "smartagent [question]",
	Short: "smartagent - tool-using ReAct agent for everyday questions",
	Args:  cobra.ArbitraryArgs,
	RunE:  runAsk,
	// Errors are reported once by main, without a usage dump
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web chat UI",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagModel, "model", "m", "", "model identifier (default from OPENROUTER_MODEL or built-in)")
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "openrouter", "LLM provider: openrouter, openai, or gemini")
	rootCmd.PersistentFlags().IntVarP(&flagMaxIterations, "max-iterations", "n", 10, "maximum reasoning iterations per question")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress intermediate reasoning and observations")
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address for the web UI")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	// Best effort, like the original python-dotenv load
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient builds the model client for the selected provider, sourcing
// the credential from the environment. A missing credential fails here,
// before any loop iteration starts.
func newClient(ctx context.Context) (llm.LLM, error) {
	switch strings.ToLower(flagProvider) {
	case "openrouter":
		key := os.Getenv("OPENROUTER_API_KEY")
		if key == "" {
			return nil, errors.New("OPENROUTER_API_KEY environment variable not set (get a key at https://openrouter.ai/keys)")
		}
		return llm.NewOpenRouterLLM(key)
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, errors.New("OPENAI_API_KEY environment variable not set")
		}
		return llm.NewOpenAILLM(key)
	case "gemini":
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return nil, errors.New("GEMINI_API_KEY environment variable not set")
		}
		return llm.NewGeminiLLM(ctx, key)
	default:
		return nil, fmt.Errorf("unknown provider %q", flagProvider)
	}
}

func buildAgent() *reactagent.Agent {
	model := flagModel
	if model == "" {
		model = os.Getenv("OPENROUTER_MODEL")
	}
	if model == "" {
		model = reactagent.DefaultModel
	}

	agent := reactagent.NewAgent("smartagent", model)
	agent.Tools = tools.NewRegistry(tools.DefaultConfig())
	return agent
}

func buildRunner(client llm.LLM, verbose bool, onStep func(reactagent.Step)) (*reactagent.Runner, error) {
	config := reactagent.DefaultConfig()
	config.MaxIterations = flagMaxIterations
	config.Verbose = verbose
	config.OnStep = onStep
	return reactagent.NewRunner(client, config)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	runner, err := buildRunner(client, !flagQuiet, nil)
	if err != nil {
		return err
	}
	agent := buildAgent()

	if len(args) > 0 {
		return answer(ctx, runner, agent, strings.Join(args, " "))
	}
	return repl(ctx, runner, agent)
}

// answer runs one question and prints the outcome. Exhaustion prints the
// apology and returns an error so the process exits non-zero.
func answer(ctx context.Context, runner *reactagent.Runner, agent *reactagent.Agent, question string) error {
	result, err := runner.Run(ctx, agent, question)
	if err != nil {
		var limitErr *reactagent.IterationLimitError
		if errors.As(err, &limitErr) {
			fmt.Printf("\nI couldn't complete the task within %d steps. Please try rephrasing your question or breaking it into smaller parts.\n", limitErr.MaxIterations)
		}
		return err
	}

	fmt.Printf("\n%s\nFINAL ANSWER:\n%s\n\n%s\n", strings.Repeat("=", 60), strings.Repeat("=", 60), result.FinalAnswer)
	return nil
}

func repl(ctx context.Context, runner *reactagent.Runner, agent *reactagent.Agent) error {
	fmt.Println(banner)
	fmt.Printf("\nAgent ready with model: %s\n", agent.Model)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYour question: ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "exit", "quit", "q":
			fmt.Println("Goodbye!")
			return nil
		case "examples":
			fmt.Println(exampleQuestions)
			continue
		}

		if err := answer(ctx, runner, agent, input); err != nil {
			var limitErr *reactagent.IterationLimitError
			if !errors.As(err, &limitErr) {
				// Transport failures are fatal for the session but the
				// REPL keeps accepting new questions
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	agent := buildAgent()

	var server *webapp.Server
	runner, err := buildRunner(client, false, func(step reactagent.Step) {
		server.Hub().Broadcast(step)
	})
	if err != nil {
		return err
	}

	server = webapp.NewServer(func(ctx context.Context, question string) (*reactagent.RunResult, error) {
		return runner.Run(ctx, agent, question)
	})

	fmt.Printf("Serving web UI on %s (model: %s)\n", flagAddr, agent.Model)
	return server.Run(flagAddr)
}
