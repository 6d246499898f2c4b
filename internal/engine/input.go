package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/javiermmdev/rps/internal/types"
)

var (
	// ErrNotANumber marks input text that does not parse as an integer.
	ErrNotANumber = errors.New("not a number")
	// ErrOutOfRange marks an integer that is not a choice code.
	ErrOutOfRange = errors.New("choice code out of range")
	// ErrInputClosed is returned when the input stream ends before a valid
	// choice was read. Nothing more can be read, so callers must stop.
	ErrInputClosed = errors.New("input closed")
)

// ParseChoice converts one line of user text to a Choice. Surrounding
// whitespace is ignored.
func ParseChoice(text string) (types.Choice, error) {
	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	c, ok := types.ChoiceFromCode(n)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return c, nil
}

// Prompter is the output side of the input loop.
type Prompter interface {
	Prompt()
	InvalidOption()
	UserChoice(types.Choice)
}

// maxLineBytes bounds a single input line. Longer lines are drained and
// treated as invalid text.
const maxLineBytes = 4096

// InputReader reads choices line by line, reprompting until one is valid.
type InputReader struct {
	r   *bufio.Reader
	out Prompter
}

func NewInputReader(r io.Reader, out Prompter) *InputReader {
	return &InputReader{r: bufio.NewReaderSize(r, maxLineBytes), out: out}
}

// ReadUserChoice blocks until a valid choice is entered and echoes it.
// Invalid lines, oversized ones included, are reported and skipped. It
// returns ErrInputClosed at end of input and wraps any read error from the
// underlying stream. The returned Choice is meaningless when err is non-nil.
func (ir *InputReader) ReadUserChoice() (types.Choice, error) {
	for {
		ir.out.Prompt()
		line, err := ir.readLine()
		switch {
		case errors.Is(err, ErrNotANumber):
			ir.out.InvalidOption()
			continue
		case errors.Is(err, io.EOF):
			return 0, ErrInputClosed
		case err != nil:
			return 0, fmt.Errorf("read choice: %w", err)
		}
		c, err := ParseChoice(line)
		if err != nil {
			ir.out.InvalidOption()
			continue
		}
		ir.out.UserChoice(c)
		return c, nil
	}
}

// readLine returns the next line. A final line without a newline is still
// returned; io.EOF only comes back once nothing is left.
func (ir *InputReader) readLine() (string, error) {
	line, err := ir.r.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = ir.r.ReadSlice('\n')
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return "", fmt.Errorf("%w: line longer than %d bytes", ErrNotANumber, maxLineBytes)
	}
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return string(line), nil
}
