package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword
var readPassword = term.ReadPassword

// Prompter asks the user for single lines of input
type Prompter struct {
	src io.Reader
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and prompting on out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		src: in,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Line prints label and reads one line without its line ending. Other
// whitespace is kept. A final line without a trailing newline is still
// returned; io.EOF is returned only when nothing was read.
func (p *Prompter) Line(label string) (string, error) {
	if label != "" {
		if _, err := fmt.Fprint(p.out, label); err != nil {
			return "", err
		}
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Password prints label and reads a password, without echo when the
// input is a terminal
func (p *Prompter) Password(label string) (string, error) {
	f, ok := p.src.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.Line(label)
	}

	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}
	pw, err := readPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
