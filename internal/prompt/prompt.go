package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user a question and returns the answer.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Line prompts on an output stream and reads a single line of input.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine returns a Line prompter reading from in and writing labels to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// Prompt writes label and reads one line. The line ending is stripped; the
// answer is otherwise returned as typed, including the empty string.
func (l *Line) Prompt(label string) (string, error) {
	if _, err := fmt.Fprint(l.out, label); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trim(line), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return trim(line), nil
}

func trim(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Static always answers with the same string.
type Static string

// Prompt returns s without reading anything.
func (s Static) Prompt(string) (string, error) {
	return string(s), nil
}
