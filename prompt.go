package reactagent

import (
	"fmt"
	"strings"
)

// systemPrompt builds the instructions that teach the model the
// reason/act/observe protocol and the marker syntax the parser expects.
func systemPrompt(agent *Agent) string {
	var b strings.Builder

	b.WriteString("You are a helpful assistant that uses a ReAct (Reason + Act + Observe) approach to answer questions.\n\n")

	if agent.Tools != nil && agent.Tools.Len() > 0 {
		b.WriteString(agent.Tools.Descriptions())
		b.WriteString("\n")
	}

	b.WriteString(`Instructions:
1. REASON about the user's question and what information you need
2. If you need to use a tool, respond with:
   ACTION: tool_name(arg1, arg2)
   Quote string arguments, write numbers bare: ACTION: get_weather("Boise")
3. After using a tool, you will receive an OBSERVATION
4. Continue reasoning and using tools as needed
5. When you have enough information, respond with:
   FINAL ANSWER: [your complete answer here]

Important:
- Use tools ONE AT A TIME
- Think step by step and show your reasoning before each action
- Arguments are positional, in the order listed for each tool
- When doing calculations with percentages, use the calculator tool
- Always provide a FINAL ANSWER when you're done

Example flow:
User: What is 15% of 200?
Assistant: I need to calculate 15% of 200. I'll use the calculator.
ACTION: calculator("200 * 0.15")
[You receive an OBSERVATION]
FINAL ANSWER: 15% of 200 is 30.
`)

	if agent.Instructions != "" {
		fmt.Fprintf(&b, "\n%s\n", agent.Instructions)
	}

	return b.String()
}
