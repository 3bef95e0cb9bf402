package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/mattn/go-isatty"
)

func noComplete(d prompt.Document) []prompt.Suggest { return nil }

// AskLine reads one line of operator input. Interactive terminals get
// line editing, piped stdin falls back to a plain buffered read.
func AskLine(prefix string) string {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return prompt.Input(prefix, noComplete)
	}
	r := bufio.NewReader(os.Stdin)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

// AskQuit offers the single-shot quit prompt. Returns true on Q/q.
func AskQuit() bool {
	answer := AskLine("Press Q to quit\n")
	return answer == "Q" || answer == "q"
}
