package console

import (
	"strings"

	"github.com/chzyer/readline"
)

// YesOrNo asks a y/n question and reports the answer. Empty input and
// unrecognized answers count as no.
func YesOrNo(question string) (bool, error) {
	answer, err := Prompt(question+" [y/N]:", "n", "y")
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

// Prompt reads one line of input. When constraints are given the first one is
// the default, returned for empty or unmatched input.
func Prompt(question string, constraints ...string) (string, error) {
	rl, err := readline.New(question)
	if err != nil {
		return "", err
	}
	defer func() { _ = rl.Close() }()
	response, err := rl.Readline()
	if err != nil {
		return "", err
	}
	if len(constraints) == 0 {
		return response, nil
	}
	normalized := strings.ToLower(strings.TrimSpace(response))
	for _, c := range constraints {
		if normalized == c {
			return c, nil
		}
	}
	return constraints[0], nil
}
