package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"
)

// Handler runs one menu operation. It prints its own user-facing messages and
// returns an error only for storage-level failures, which end the session.
type Handler func(ctx context.Context, p *Prompter) error

// Item is one numbered menu entry.
type Item struct {
	Label string
	Run   Handler
}

// Menu is a fixed ordered option list; the exit entry is appended on render.
type Menu struct {
	Title string
	Items []Item
}

// Session owns one read-evaluate-print cycle over an injected input/output
// pair. Handlers run without a deadline so time spent at a prompt is never
// limited; storage round-trips are bounded at the storage layer.
type Session struct {
	p   *Prompter
	out io.Writer
	log *zap.Logger
}

// NewSession constructs a session over the given streams.
func NewSession(in io.Reader, out io.Writer, log *zap.Logger) *Session {
	return &Session{p: NewPrompter(in, out), out: out, log: log}
}

// Run renders the menu and dispatches until the exit option is chosen, input
// ends, or a storage-level failure occurs. Unknown choices report
// "Invalid option." and redisplay the menu without other effect.
func (s *Session) Run(ctx context.Context, m *Menu) error {
	exit := strconv.Itoa(len(m.Items) + 1)
	for {
		fmt.Fprintf(s.out, "\n--- %s ---\n", m.Title)
		for i, it := range m.Items {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, it.Label)
		}
		fmt.Fprintf(s.out, "%s. Exit\n", exit)

		choice, err := s.p.Line("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == exit {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}

		item, ok := s.lookup(m, choice)
		if !ok {
			fmt.Fprintln(s.out, "Invalid option.")
			continue
		}
		if err := s.dispatch(ctx, item); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Error("operation failed", zap.String("option", item.Label), zap.Error(err))
			return err
		}
	}
}

// lookup maps the trimmed input to an item by exact option-code match.
func (s *Session) lookup(m *Menu, choice string) (Item, bool) {
	for i, it := range m.Items {
		if choice == strconv.Itoa(i+1) {
			return it, true
		}
	}
	return Item{}, false
}

// dispatch runs one handler. Aborted field collection is already reported and
// never ends the session.
func (s *Session) dispatch(ctx context.Context, it Item) error {
	err := it.Run(ctx, s.p)
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}
