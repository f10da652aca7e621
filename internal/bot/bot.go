// Package bot runs address book commands read line by line.
package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/username/address-book-bot/internal/addressbook"
	"github.com/username/address-book-bot/pkg/dateutil"
	"go.uber.org/zap"
)

const welcome = "Welcome to the assistant bot!"

// Response is the outcome of a single command
type Response struct {
	Text string
	Quit bool
}

// Option configures a Bot
type Option func(*Bot)

// WithClock sets the source of "today" for the birthdays command
func WithClock(now func() time.Time) Option {
	return func(b *Bot) {
		b.now = now
	}
}

// WithPrompt sets the text printed before each line is read.
// An empty prompt prints nothing.
func WithPrompt(prompt string) Option {
	return func(b *Bot) {
		b.prompt = prompt
	}
}

// Bot dispatches commands to an address book
type Bot struct {
	book   *addressbook.Book
	logger *zap.Logger
	now    func() time.Time
	prompt string
}

// New creates a bot over book
func New(book *addressbook.Book, logger *zap.Logger, opts ...Option) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Bot{
		book:   book,
		logger: logger,
		now:    dateutil.Today,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Execute runs one input line.
// Failures are returned as *addressbook.Error values.
func (b *Bot) Execute(line string) (Response, error) {
	name, args, err := ParseInput(line)
	if err != nil {
		return Response{}, err
	}

	cmd, err := lookup(name, args)
	if err != nil {
		return Response{}, err
	}

	b.logger.Debug("Executing command",
		zap.String("command", name),
		zap.Int("args", len(args)))

	text, err := cmd.handler(b, args)
	if err != nil {
		return Response{}, err
	}
	return Response{Text: text, Quit: cmd.quit}, nil
}

// Respond runs one input line and renders any failure as text
func (b *Bot) Respond(line string) Response {
	resp, err := b.Execute(line)
	if err != nil {
		return Response{Text: b.render(err)}
	}
	return resp
}

// render turns an error into the text shown to the user
func (b *Bot) render(err error) string {
	var bookErr *addressbook.Error
	if errors.As(err, &bookErr) {
		b.logger.Debug("Command rejected",
			zap.Stringer("kind", bookErr.Kind),
			zap.String("name", bookErr.Name))
		return bookErr.Error()
	}

	// Handlers only fail with *addressbook.Error; anything else is a bug.
	b.logger.Error("Unexpected command failure", zap.Error(err))
	return fmt.Sprintf("Unexpected error: %v", err)
}

// Run reads commands from in until close/exit, EOF or ctx cancellation
func (b *Bot) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprintln(out, welcome); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if b.prompt != "" {
			if _, err := fmt.Fprint(out, b.prompt); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			b.logger.Debug("Input closed")
			return nil
		}

		resp := b.Respond(scanner.Text())
		if _, err := fmt.Fprintln(out, resp.Text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if resp.Quit {
			b.logger.Info("Bot stopped by command")
			return nil
		}
	}
}
