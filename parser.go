package reactagent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FinalAnswerMarker is the prefix a model response uses to signal completion
const FinalAnswerMarker = "FINAL ANSWER:"

// ActionMarker is the prefix a model response uses to request a tool,
// in the form "ACTION: name(arg1, arg2, ...)".
const ActionMarker = "ACTION:"

var (
	finalAnswerRe = regexp.MustCompile(`(?i)FINAL ANSWER:`)
	actionRe      = regexp.MustCompile(`(?i)ACTION:\s*([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
)

// ParsedResponse is the outcome of parsing one model turn: either a final
// answer or a single tool call, never both.
type ParsedResponse struct {
	IsFinal     bool
	FinalAnswer string
	ToolCall    *ToolCall
}

// ParseResponse inspects the raw text produced by the model for one turn.
// The final-answer marker wins: when present, the remainder of the text is
// the answer and any tool-call syntax after it is ignored. Otherwise the
// first action marker is extracted. When neither marker is found, or the
// action's argument list is malformed, ErrNoMarker or a wrapping error is
// returned and the controller applies its fallback policy.
func ParseResponse(text string) (ParsedResponse, error) {
	if loc := finalAnswerRe.FindStringIndex(text); loc != nil {
		return ParsedResponse{
			IsFinal:     true,
			FinalAnswer: strings.TrimSpace(text[loc[1]:]),
		}, nil
	}

	m := actionRe.FindStringSubmatchIndex(text)
	if m == nil {
		return ParsedResponse{}, ErrNoMarker
	}

	name := text[m[2]:m[3]]
	args, err := scanArgs(text[m[1]:])
	if err != nil {
		return ParsedResponse{}, fmt.Errorf("malformed arguments for tool %q: %w", name, err)
	}

	return ParsedResponse{ToolCall: &ToolCall{Name: name, Args: args}}, nil
}

// scanArgs reads a delimited argument list starting just after the opening
// parenthesis. Arguments are quoted strings (single or double, with
// backslash escapes) or numeric literals, separated by commas. No
// expression syntax is recognized: anything that is not a literal is a
// scan error, so argument parsing can never reach an evaluation path.
func scanArgs(s string) ([]any, error) {
	args := []any{}
	i := skipSpaces(s, 0)

	if i < len(s) && s[i] == ')' {
		return args, nil
	}

	for {
		if i >= len(s) {
			return nil, fmt.Errorf("unterminated argument list")
		}

		var val any
		var err error
		switch s[i] {
		case '"', '\'':
			val, i, err = scanQuoted(s, i)
		default:
			val, i, err = scanNumber(s, i)
		}
		if err != nil {
			return nil, err
		}
		args = append(args, val)

		i = skipSpaces(s, i)
		if i >= len(s) {
			return nil, fmt.Errorf("unterminated argument list")
		}
		switch s[i] {
		case ')':
			return args, nil
		case ',':
			i = skipSpaces(s, i+1)
		default:
			return nil, fmt.Errorf("unexpected character %q after argument", s[i])
		}
	}
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

// scanQuoted reads a quoted string literal starting at the opening quote
func scanQuoted(s string, i int) (string, int, error) {
	quote := s[i]
	i++
	var b strings.Builder
	for i < len(s) {
		c := s[i]
		switch c {
		case '\\':
			if i+1 >= len(s) {
				return "", i, fmt.Errorf("dangling escape in string literal")
			}
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i])
			}
			i++
		case quote:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", i, fmt.Errorf("unterminated string literal")
}

// scanNumber reads a numeric literal starting at i
func scanNumber(s string, i int) (float64, int, error) {
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (isDigit(s[i]) || s[i] == '.' || s[i] == 'e' || s[i] == 'E') {
		i++
		// allow an exponent sign directly after e/E
		if i < len(s) && (s[i] == '+' || s[i] == '-') && (s[i-1] == 'e' || s[i-1] == 'E') {
			i++
		}
	}
	token := s[start:i]
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, i, fmt.Errorf("expected a quoted string or number, got %q", firstToken(s[start:]))
	}
	return v, i, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func firstToken(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ',' || s[i] == ')' || s[i] == ' ' || s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
