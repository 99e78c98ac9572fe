package reactagent

import (
	"context"
	"fmt"
	"strings"
)

// Tool is a capability the model can invoke. Execute receives positional
// arguments (string or float64) in the order declared by Params and always
// reports its result as text, so the model's context stays uniform.
type Tool struct {
	Name        string                                            // Registered name, matched against parsed tool calls
	Description string                                            // One-line description shown in the system prompt
	Params      []string                                          // Positional parameter names, optional ones last
	Example     string                                            // Example invocation shown in the system prompt
	Execute     func(ctx context.Context, args []any) (string, error) // The actual tool implementation
}

// Registry maps tool names to their implementations. A registry is built
// explicitly and handed to the Runner at construction, so independent
// sessions and tests can carry different tool sets.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry creates a registry holding the given tools. Registration
// errors here are programmer mistakes and panic, matching how a global
// init-time registry would have failed.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a tool to the registry
func (r *Registry) Register(t Tool) error {
	if t.Name == "" || t.Execute == nil {
		return ErrInvalidTool
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Lookup returns the tool registered under name
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered tools
func (r *Registry) Len() int {
	return len(r.order)
}

// Invoke resolves and executes a tool call. Failures are never returned to
// the caller: an unknown tool, an argument mismatch, or an execution error
// all degrade to an observation describing the problem, so the loop can
// feed it back to the model instead of crashing the session.
func (r *Registry) Invoke(ctx context.Context, call ToolCall) Observation {
	tool, ok := r.Lookup(call.Name)
	if !ok {
		return Observation{
			Tool: call.Name,
			Text: fmt.Sprintf("ERROR: unknown tool %q. Available tools: %s",
				call.Name, strings.Join(r.Names(), ", ")),
		}
	}

	if len(call.Args) > len(tool.Params) {
		return Observation{
			Tool: call.Name,
			Text: fmt.Sprintf("ERROR: tool %q takes at most %d argument(s), got %d",
				call.Name, len(tool.Params), len(call.Args)),
		}
	}

	text, err := tool.Execute(ctx, call.Args)
	if err != nil {
		return Observation{
			Tool: call.Name,
			Text: fmt.Sprintf("ERROR: tool %q failed: %v", call.Name, err),
		}
	}
	return Observation{Tool: call.Name, Text: text}
}

// Descriptions formats the registered tools for inclusion in the system
// prompt, one numbered entry per tool.
func (r *Registry) Descriptions() string {
	var b strings.Builder
	b.WriteString("Available Tools:\n")
	for i, name := range r.order {
		tool := r.tools[name]
		fmt.Fprintf(&b, "\n%d. %s(%s)\n", i+1, tool.Name, strings.Join(tool.Params, ", "))
		if tool.Description != "" {
			fmt.Fprintf(&b, "   - %s\n", tool.Description)
		}
		if tool.Example != "" {
			fmt.Fprintf(&b, "   - Example: %s\n", tool.Example)
		}
	}
	return b.String()
}
