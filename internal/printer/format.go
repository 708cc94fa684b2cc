package printer

import "fmt"

// Format selects one of the output layouts
type Format int

const (
	FormatPlain Format = iota
	FormatClaudeXML
	FormatMarkdown
)

func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatClaudeXML:
		return "cxml"
	case FormatMarkdown:
		return "markdown"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}
