package client

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"
	"github.com/samber/lo"
)

const (
	successPrefix = "* "
	failurePrefix = "! "
)

// Renderer writes to the terminal. Command feedback and pushed messages are
// written from different goroutines, lines never interleave.
type Renderer struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
}

func NewRenderer(out io.Writer, colours bool) *Renderer {
	return &Renderer{out: out, colours: colours}
}

// Success prints a server confirmation. Empty messages print nothing.
func (r *Renderer) Success(message string) {
	if message == "" {
		return
	}
	r.write(successPrefix, message, color.FgGreen)
}

func (r *Renderer) Failure(message string) {
	r.write(failurePrefix, message, color.FgRed)
}

func (r *Renderer) Info(message string) {
	r.write(successPrefix, message, color.FgGray)
}

// Push prints a relayed chat message as received.
func (r *Renderer) Push(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.colours {
		message = color.New(color.FgCyan).Render(message)
	}
	_, _ = fmt.Fprintln(r.out, message)
}

func (r *Renderer) write(prefix, message string, fg color.Color) {
	lines := lo.Map(strings.Split(message, "\n"), func(line string, _ int) string {
		line = prefix + line
		if r.colours {
			return color.New(fg).Render(line)
		}
		return line
	})
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.out, strings.Join(lines, "\n"))
}
