// Command neotext opens a file in the terminal editor.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/0x1david/neotext/terminal"
)

func main() {
	debug := flag.Bool("debug", false, "write a debug log to ./neotext-debug.log")
	flag.BoolVar(debug, "d", false, "shorthand for --debug")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("neotext-debug.log", "debug")
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not open debug log:", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
	}

	path := flag.Arg(0)
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: neotext [-d|--debug] <file>")
		os.Exit(1)
	}

	lines, err := readLines(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "neotext:", err)
		os.Exit(1)
	}

	m := terminal.New(80, 24, lines)
	m.SetSaveHook(func(lines []string) error {
		return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
	})

	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("program exited with error: %v", err)
		fmt.Fprintln(os.Stderr, "neotext:", err)
		os.Exit(1)
	}
}

// readLines loads path into lines, creating an empty single-line buffer for
// a file that does not yet exist — opening a new file is not an error.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{""}, nil
		}
		return nil, err
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return []string{""}, nil
	}
	return strings.Split(content, "\n"), nil
}
