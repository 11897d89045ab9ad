package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single input line; browser "Copy as cURL" output can
// carry large cookies and bodies on one line.
const maxLineSize = 1 << 20

// Command is one curl command taken from a multi-command file.
type Command struct {
	Line int    // 1-indexed line the command starts on
	Text string // raw text, continuation lines included
}

// SplitCommands separates a file of saved commands.
//
// A command starts at a line whose first word is "curl". Lines after a
// trailing backslash or backtick always belong to the current command, as
// do other non-blank lines that do not start a new one. Blank lines and
// lines starting with '#' end the current command. A stray line before any
// command becomes a command of its own, so the caller sees it rejected.
func SplitCommands(r io.Reader) ([]Command, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		cmds      []Command
		cur       *Command
		text      strings.Builder
		continued bool
		lineNo    int
	)

	flush := func() {
		if cur != nil {
			cur.Text = text.String()
			cmds = append(cmds, *cur)
			cur = nil
			text.Reset()
		}
	}
	start := func(line string) {
		flush()
		cur = &Command{Line: lineNo}
		text.WriteString(line)
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case cur != nil && continued:
			text.WriteByte('\n')
			text.WriteString(line)
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			flush()
		case startsCommand(trimmed) || cur == nil:
			start(line)
		default:
			text.WriteByte('\n')
			text.WriteString(line)
		}

		continued = cur != nil && (strings.HasSuffix(trimmed, `\`) || strings.HasSuffix(trimmed, "`"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read commands at line %d: %w", lineNo+1, err)
	}
	flush()
	return cmds, nil
}

func startsCommand(line string) bool {
	word, _, _ := strings.Cut(line, " ")
	word, _, _ = strings.Cut(word, "\t")
	return strings.EqualFold(word, "curl")
}
