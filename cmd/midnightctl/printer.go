package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/AlexZinkM/midnightctl/internal/address"
)

// printer writes human readable output to out and errors to errOut.
type printer struct {
	out    io.Writer
	errOut io.Writer

	info    *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	step    *color.Color
	title   *color.Color
	label   *color.Color
}

func newPrinter(out, errOut io.Writer) *printer {
	return &printer{
		out:     out,
		errOut:  errOut,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		step:    color.New(color.FgBlue),
		title:   color.New(color.FgCyan, color.Bold),
		label:   color.New(color.Faint),
	}
}

func (p *printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, p.info.Sprint("ℹ"), fmt.Sprintf(format, args...))
}

func (p *printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, p.success.Sprint("✓"), fmt.Sprintf(format, args...))
}

func (p *printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, p.warn.Sprint("⚠"), fmt.Sprintf(format, args...))
}

func (p *printer) Error(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.fail.Sprint("✗"), fmt.Sprintf(format, args...))
}

func (p *printer) Step(format string, args ...any) {
	fmt.Fprintln(p.out, p.step.Sprint("→"), fmt.Sprintf(format, args...))
}

func (p *printer) Title(text string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.title.Sprint(text))
	fmt.Fprintln(p.out)
}

// Field prints an indented "label: value" line.
func (p *printer) Field(name, value string) {
	fmt.Fprintf(p.out, "  %s %s\n", p.label.Sprintf("%-13s", name+":"), value)
}

func (p *printer) Line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Mnemonic prints words four to a row with their positions.
func (p *printer) Mnemonic(words []string) {
	const cols = 4
	p.Line("  Mnemonic (%d words):", len(words))
	p.Line("")
	for row := 0; row*cols < len(words); row++ {
		var cells []string
		for col := 0; col < cols && row*cols+col < len(words); col++ {
			i := row*cols + col
			cells = append(cells, fmt.Sprintf("%2d. %-10s", i+1, words[i]))
		}
		p.Line("    %s", strings.Join(cells, "  "))
	}
	p.Line("")
	p.Warn("WARNING: store this mnemonic securely, it will not be shown again!")
	p.Line("")
}

// Progress redraws the sync progress line in place.
func (p *printer) Progress(syncedIndex, remainingLag int64) {
	fmt.Fprintf(p.out, "\r  Sync progress: %d%%   ", syncPercent(syncedIndex, remainingLag))
}

func (p *printer) EndProgress() {
	fmt.Fprintln(p.out)
}

func syncPercent(syncedIndex, remainingLag int64) int64 {
	if remainingLag <= 0 || syncedIndex >= remainingLag {
		return 100
	}
	if syncedIndex <= 0 {
		return 0
	}
	return syncedIndex * 100 / remainingLag
}

func short(text string) string {
	return address.TruncateForDisplay(text)
}
