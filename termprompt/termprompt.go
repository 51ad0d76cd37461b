// Package termprompt is a textinput.Prompter for native builds. It reads one
// line from a terminal, using raw-mode line editing when the input is a TTY
// and plain line reading otherwise.
//
// A terminal cannot pre-fill the input line the way window.prompt does, so
// the initial value is shown in brackets and an empty line accepts it.
// End of input (Ctrl-D) cancels.
package termprompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vcrobe/nojs-textinput/textinput"
)

// Compile-time assertion to ensure Prompter implements textinput.Prompter.
var _ textinput.Prompter = (*Prompter)(nil)

// Prompter prompts on Out and reads answers from In.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	// Err receives the last read failure other than end of input.
	Err error

	lines *bufio.Reader
}

// New returns a Prompter over in and out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: in, Out: out}
}

// Stdio returns a Prompter over the process's standard input and output.
func Stdio() *Prompter {
	return New(os.Stdin, os.Stdout)
}

// Prompt implements textinput.Prompter.
func (p *Prompter) Prompt(title, initialValue string) (string, bool) {
	label := promptLabel(title, initialValue)

	var line string
	var err error
	if fd, ok := terminalFD(p.In); ok {
		line, err = p.readRaw(fd, label)
	} else {
		line, err = p.readPlain(label)
	}
	if err != nil {
		if !errors.Is(err, io.EOF) {
			p.Err = err
		}
		return "", false
	}
	if line == "" {
		return initialValue, true
	}
	return line, true
}

func promptLabel(title, initialValue string) string {
	if initialValue == "" {
		return title + ": "
	}
	return fmt.Sprintf("%s [%s]: ", title, initialValue)
}

func (p *Prompter) readPlain(label string) (string, error) {
	if p.lines == nil {
		p.lines = bufio.NewReader(p.In)
	}
	if _, err := io.WriteString(p.Out, label); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := p.lines.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) readRaw(fd int, label string) (string, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	t := term.NewTerminal(readWriter{p.In, p.Out}, label)
	line, err := t.ReadLine()
	if err != nil {
		return "", err
	}
	return line, nil
}

type readWriter struct {
	io.Reader
	io.Writer
}

// fder is satisfied by *os.File.
type fder interface {
	Fd() uintptr
}

func terminalFD(r io.Reader) (int, bool) {
	f, ok := r.(fder)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
