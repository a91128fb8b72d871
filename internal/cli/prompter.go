package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Prompter asks the user questions on a terminal. It satisfies
// tracker.Confirmer.
type Prompter struct {
	reader *NonBlockingReader
	writer io.Writer
}

// NewPrompter creates a prompter reading answers from reader and writing
// questions to writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		panic("reader cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}

	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// Confirm prints prompt with a [y/N] suffix and reports whether the user
// answered yes. Anything else, including EOF and cancellation, is a no.
func (p *Prompter) Confirm(ctx context.Context, prompt string) bool {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		slog.Warn("Failed to write prompt", "error", err)
		return false
	}

	answer, err := p.reader.ReadLine(ctx)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			slog.Debug("Confirmation aborted", "error", err)
		}
		_, _ = fmt.Fprintln(p.writer)
		return false
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// RenderUtilization draws a one-shot bar of spent against limit. Spending
// beyond the limit fills the bar.
func RenderUtilization(w io.Writer, spent float64, limit int) error {
	if limit <= 0 {
		limit = 1
	}

	bar := progressbar.NewOptions(limit,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetDescription("[cyan][bold]Weekly budget[reset]"),
		progressbar.OptionSetTheme(utilizationTheme(spent, limit)),
	)

	if err := bar.Set(min(int(spent), limit)); err != nil {
		return fmt.Errorf("failed to render utilization: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

func utilizationTheme(spent float64, limit int) progressbar.Theme {
	color := "[green]"
	switch {
	case spent >= float64(limit):
		color = "[red]"
	case spent >= 0.8*float64(limit):
		color = "[yellow]"
	}

	return progressbar.Theme{
		Saucer:        color + "█[reset]",
		SaucerHead:    color + "█[reset]",
		SaucerPadding: "░",
		BarStart:      "[",
		BarEnd:        "]",
	}
}

// NewProgressBar returns a counting bar for batch work such as exports.
func NewProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
