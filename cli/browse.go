package cli

// This file contains the browse command, a line-oriented interactive view of
// a report. Every input line is one event for the session engine.

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/openhpc/testview/model"
	"github.com/openhpc/testview/session"
)

const browsePrompt = "> "

// lockedWriter serializes writes from the input loop and from debounced
// searches firing in the background.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

type browseCommand struct {
	name string
	args []string
}

func parseBrowseCommand(line string) (browseCommand, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return browseCommand{}, false
	}
	return browseCommand{name: strings.ToLower(fields[0]), args: fields[1:]}, true
}

func (a *App) browse(ctx *cli.Context) error {
	filter, sort, err := viewState(ctx)
	if err != nil {
		return err
	}

	loaded, err := a.loadReport(ctx)
	if err != nil {
		return err
	}

	out := &lockedWriter{w: a.stdout}
	engine := session.New(a.logger, loaded.records, newTextRenderer(out),
		session.WithFilter(filter),
		session.WithSort(sort),
	)
	defer engine.Close()

	engine.Refresh()
	return runBrowse(engine, a.stdin, out)
}

// runBrowse handles commands from in until quit or end of input. A search
// still waiting for its quiet interval at that point is dropped.
func runBrowse(engine *session.Engine, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, browsePrompt)

	for scanner.Scan() {
		cmd, ok := parseBrowseCommand(scanner.Text())
		if ok {
			quit, err := handleBrowseCommand(engine, cmd, out)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
			if quit {
				return nil
			}
		}
		fmt.Fprint(out, browsePrompt)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func handleBrowseCommand(engine *session.Engine, cmd browseCommand, out io.Writer) (bool, error) {
	switch cmd.name {
	case "quit", "exit", "q":
		return true, nil

	case "filter", "f":
		if len(cmd.args) < 2 {
			return false, fmt.Errorf("usage: filter <key> <value>")
		}
		key, err := parseFilterKey(cmd.args[0])
		if err != nil {
			return false, err
		}
		value := strings.Join(cmd.args[1:], " ")
		if key == model.FilterSearch {
			engine.Search(value)
			return false, nil
		}
		if key == model.FilterStatus && !isValidStatus(value) {
			return false, fmt.Errorf("unknown status %q (valid: pass, fail, warning, unknown)", value)
		}
		engine.SetFilter(key, value)

	case "clear", "c":
		if len(cmd.args) == 0 {
			engine.ClearFilters()
			return false, nil
		}
		key, err := parseFilterKey(cmd.args[0])
		if err != nil {
			return false, err
		}
		engine.SetFilter(key, "")

	case "search", "/":
		engine.Search(strings.Join(cmd.args, " "))

	case "sort", "s":
		if len(cmd.args) != 1 {
			return false, fmt.Errorf("usage: sort <test|status|date>")
		}
		column, err := parseSortColumn(cmd.args[0])
		if err != nil {
			return false, err
		}
		engine.ClickSort(column)

	case "open", "o":
		if len(cmd.args) != 1 {
			return false, fmt.Errorf("usage: open <n>")
		}
		n, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return false, fmt.Errorf("invalid row number %q", cmd.args[0])
		}
		records := engine.Last().Records
		if n < 1 || n > len(records) {
			return false, fmt.Errorf("row %d out of range (%d shown)", n, len(records))
		}
		record := records[n-1]
		if record.Link == "" {
			return false, fmt.Errorf("%s has no link", record.Identifier)
		}
		fmt.Fprintln(out, openCommand(record.Link))

	case "show", "ls":
		engine.Refresh()

	case "help", "?":
		fmt.Fprintln(out, "commands: filter <key> <value>, clear [key], search <text>, sort <column>, open <n>, show, quit")

	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd.name)
	}

	return false, nil
}
