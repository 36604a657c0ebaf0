package runner

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/aretw0/numeral/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Input reads the next line. It returns io.EOF when the source is exhausted.
	Input(ctx context.Context) (string, error)

	// Result presents a successful evaluation.
	Result(ctx context.Context, res domain.Result) error

	// Failure presents a failed evaluation of input.
	Failure(ctx context.Context, input string, err error) error

	// SystemOutput presents a meta-message (help text, banners).
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms system text before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling this package.
type ContentRenderer func(string) (string, error)

type inputResult struct {
	text string
	err  error
}

// linePump reads lines on a goroutine so Input can honour context cancellation.
// Close stops the goroutine once its current read returns.
type linePump struct {
	mu     sync.Mutex
	ch     chan inputResult
	done   chan struct{}
	closed bool
}

func (p *linePump) lines(r *bufio.Reader) <-chan inputResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		p.ch = make(chan inputResult)
		p.done = make(chan struct{})
		if p.closed {
			close(p.ch)
		} else {
			go pump(r, p.ch, p.done)
		}
	}
	return p.ch
}

func (p *linePump) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		if p.done != nil {
			close(p.done)
		}
	}
	return nil
}

// pump forwards lines until the reader fails or done is closed, then closes ch.
// A final line without a newline is still delivered.
func pump(r *bufio.Reader, ch chan<- inputResult, done <-chan struct{}) {
	defer close(ch)
	send := func(res inputResult) bool {
		select {
		case ch <- res:
			return true
		case <-done:
			return false
		}
	}
	for {
		text, err := r.ReadString('\n')
		if text != "" && !send(inputResult{text: text}) {
			return
		}
		if err != nil {
			if err != io.EOF {
				send(inputResult{err: err})
			}
			return
		}
	}
}
