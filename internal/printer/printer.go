// Package printer handles output formatting and display
package printer

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer renders selected files to the output destination in one format
type Printer struct {
	output      io.Writer
	buf         *bufio.Writer
	err         error
	format      Format
	render      func(path, content string)
	count       int
	xmlStarted  bool
	lineNumbers bool
	useColors   bool
	pathColor   *color.Color
}

// Option is a functional option for configuring the Printer
type Option func(*Printer)

// WithOutput sets the output destination
func WithOutput(w io.Writer) Option {
	return func(p *Printer) {
		if w != nil {
			p.output = w
		}
	}
}

// WithLineNumbers prefixes content lines with their numbers
func WithLineNumbers(enabled bool) Option {
	return func(p *Printer) {
		p.lineNumbers = enabled
	}
}

// WithColors highlights the path header in plain output
func WithColors(enabled bool) Option {
	return func(p *Printer) {
		p.useColors = enabled
	}
}

// New creates a Printer for format. The format is fixed for its lifetime.
func New(format Format, opts ...Option) *Printer {
	p := &Printer{
		output:    os.Stdout,
		format:    format,
		pathColor: color.New(color.FgCyan, color.Bold),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.buf = bufio.NewWriter(p.output)

	switch format {
	case FormatClaudeXML:
		p.render = p.renderXML
	case FormatMarkdown:
		p.render = p.renderMarkdown
	default:
		p.format = FormatPlain
		p.render = p.renderPlain
	}

	return p
}

// Format returns the layout in use
func (p *Printer) Format() Format {
	return p.format
}

// PrintFile writes one document. The first write error is kept and returned
// from this and every later call; nothing more is written after it.
func (p *Printer) PrintFile(path, content string) error {
	if p.err != nil {
		return p.err
	}

	if p.lineNumbers {
		content = AddLineNumbers(content)
	}

	p.count++
	p.render(path, content)
	return p.err
}

// Finalize completes any pending operations (like closing the XML wrapper)
// and flushes buffered output.
func (p *Printer) Finalize() error {
	if p.format == FormatClaudeXML {
		p.startXML()
		p.printf("</documents>\n")
	}
	if p.err == nil {
		if err := p.buf.Flush(); err != nil {
			p.err = fmt.Errorf("printer: write failed: %w", err)
		}
	}
	return p.err
}

// Count returns the number of documents printed
func (p *Printer) Count() int {
	return p.count
}

func (p *Printer) renderPlain(path, content string) {
	header := path
	if p.useColors {
		header = p.pathColor.Sprint(path)
	}
	p.printf("%s\n---\n%s\n\n---\n", header, content)
}

func (p *Printer) renderXML(path, content string) {
	p.startXML()
	p.printf("<document index=\"%d\">\n<source>%s</source>\n<document_content>\n%s\n</document_content>\n</document>\n",
		p.count, path, content)
}

func (p *Printer) renderMarkdown(path, content string) {
	fence := Fence(content)
	p.printf("%s\n%s%s\n%s\n%s\n", path, fence, LanguageFor(path), content, fence)
}

func (p *Printer) startXML() {
	if p.xmlStarted {
		return
	}
	p.xmlStarted = true
	p.printf("<documents>\n")
}

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.buf, format, args...); err != nil {
		p.err = fmt.Errorf("printer: write failed: %w", err)
	}
}
