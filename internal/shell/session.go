package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/notes/pkg/core"
)

// Session carries what a handler needs: the service, the input and the output.
type Session struct {
	Service *core.Service
	in      *bufio.Reader
	out     io.Writer
}

// NewSession creates a session reading lines from in and writing to out.
func NewSession(svc *core.Service, in io.Reader, out io.Writer) *Session {
	return &Session{
		Service: svc,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Prompt prints label and reads one line without its line terminator.
// A final line without a newline is returned as is; io.EOF is reported only
// when no input is left.
func (s *Session) Prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)

	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Println writes a line of output.
func (s *Session) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}
