package tools

import (
	"fmt"
)

// stringArg returns the required positional string argument at index i
func stringArg(args []any, i int, name string) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing required argument %q", name)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %v", name, args[i])
	}
	return s, nil
}

// optionalStringArg returns the string argument at index i, or def when absent
func optionalStringArg(args []any, i int, name, def string) (string, error) {
	if i >= len(args) {
		return def, nil
	}
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %v", name, args[i])
	}
	return s, nil
}

// numberArg returns the required positional numeric argument at index i
func numberArg(args []any, i int, name string) (float64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing required argument %q", name)
	}
	n, ok := args[i].(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q must be a number, got %v", name, args[i])
	}
	return n, nil
}

// optionalNumberArg returns the numeric argument at index i, or def when absent
func optionalNumberArg(args []any, i int, name string, def float64) (float64, error) {
	if i >= len(args) {
		return def, nil
	}
	n, ok := args[i].(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q must be a number, got %v", name, args[i])
	}
	return n, nil
}
