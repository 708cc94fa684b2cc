package printer

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const minFence = 3

// extToLang is the fixed extension to fence-language table
var extToLang = map[string]string{
	"py":   "python",
	"c":    "c",
	"cpp":  "cpp",
	"java": "java",
	"js":   "javascript",
	"ts":   "typescript",
	"html": "html",
	"css":  "css",
	"xml":  "xml",
	"json": "json",
	"yaml": "yaml",
	"yml":  "yaml",
	"sh":   "bash",
	"rb":   "ruby",
	"go":   "go",
	"rs":   "rust",
}

// LanguageFor returns the fence language for path, or "" when unknown
func LanguageFor(path string) string {
	return extToLang[strings.TrimPrefix(filepath.Ext(path), ".")]
}

// Fence returns the shortest backtick run, at least three long, that is
// longer than every backtick run inside content
func Fence(content string) string {
	longest, run := 0, 0
	for i := 0; i < len(content); i++ {
		if content[i] != '`' {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}

	n := minFence
	if longest >= n {
		n = longest + 1
	}
	return strings.Repeat("`", n)
}

// AddLineNumbers prefixes every line with its 1-based number, right-aligned
// to the width of the largest number, followed by two spaces. A final
// newline does not start an extra line and is not kept.
func AddLineNumbers(content string) string {
	lines := splitLines(content)
	width := len(strconv.Itoa(len(lines)))

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%*d  %s", width, i+1, line)
	}
	return b.String()
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
