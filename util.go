package reactagent

import (
	"fmt"
	"strings"
)

// PrintStep prints one trace step to stdout.
// It uses different colors for different phases: blue for model reasoning,
// cyan for actions, magenta for observations, and green for the answer.
func PrintStep(step Step) {
	switch step.Kind {
	case StepThought:
		fmt.Printf("\n\033[90m--- Iteration %d ---\033[0m\n", step.Iteration)
		fmt.Printf("\033[94mAssistant\033[0m: %s\n", step.Text)
	case StepAction:
		fmt.Printf("\033[96mAction\033[0m: %s(%s)\n", step.Tool, formatArgs(step.Args))
	case StepObservation:
		fmt.Printf("\033[95mObservation\033[0m: %s\n", step.Text)
	case StepAnswer:
		fmt.Printf("\033[92mFinal Answer\033[0m: %s\n", step.Text)
	}
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			parts[i] = fmt.Sprintf("%q", v)
		default:
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	return strings.Join(parts, ", ")
}
