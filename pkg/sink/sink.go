// Package sink delivers finished report lines to the console, files and S3 objects.
package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Destination receives the whole report at once.
type Destination interface {
	Deliver(ctx context.Context, lines []string) error
	String() string
}

// Sink writes one report to every destination in order and stops at the first failure.
type Sink struct {
	destinations []Destination
}

func New(destinations ...Destination) *Sink {
	return &Sink{destinations: destinations}
}

func (s *Sink) Deliver(ctx context.Context, lines []string) error {
	logger := zerolog.Ctx(ctx)
	for _, d := range s.destinations {
		if err := d.Deliver(ctx, lines); err != nil {
			return fmt.Errorf("failed to deliver report to %s: %w", d, err)
		}
		logger.Debug().Str("destination", d.String()).Int("lines", len(lines)).Msg("report delivered")
	}
	return nil
}

func join(lines []string) string {
	return strings.Join(lines, "\n")
}

type console struct {
	w io.Writer
}

// Console prints the lines with a final newline. A nil writer means standard output.
func Console(w io.Writer) Destination {
	if w == nil {
		w = os.Stdout
	}
	return &console{w: w}
}

func (c *console) Deliver(_ context.Context, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(c.w, join(lines)+"\n")
	return err
}

func (c *console) String() string {
	return "console"
}

type file struct {
	path string
}

// File overwrites path with the newline-joined lines in one write.
func File(path string) Destination {
	return &file{path: path}
}

func (f *file) Deliver(_ context.Context, lines []string) error {
	return os.WriteFile(f.path, []byte(join(lines)), 0o644)
}

func (f *file) String() string {
	return f.path
}
