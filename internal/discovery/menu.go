package discovery

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeader   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	styleFileName = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleMeta     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleLastUsed = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// ErrQuit is returned when the user quits the menu instead of selecting.
var ErrQuit = fmt.Errorf("selection cancelled")

// Menu prompts for a numbered file selection. lastUsed (may be empty) marks
// the previously analyzed file so repeat runs are one keypress.
type Menu struct {
	In  io.Reader
	Out io.Writer
}

// Select renders the file list and reads a selection. Invalid input re-prompts;
// "q" returns ErrQuit.
func (m *Menu) Select(files []LogFile, lastUsed string) (LogFile, error) {
	if len(files) == 0 {
		return LogFile{}, fmt.Errorf("no log files to select from")
	}

	fmt.Fprintln(m.Out, styleHeader.Render("Available Log Files:"))
	for i, f := range files {
		name := styleFileName.Render(f.Name)
		if f.Path == lastUsed {
			name += styleLastUsed.Render("  (last used)")
		}
		fmt.Fprintf(m.Out, "  [%d] %s\n", i+1, name)
		fmt.Fprintf(m.Out, "      %s\n", styleMeta.Render(fmt.Sprintf(
			"Size: %s | Modified: %s", FormatSize(f.Size), f.ModTime.Format("2006-01-02 15:04:05"))))
	}

	scanner := bufio.NewScanner(m.In)
	for {
		fmt.Fprintf(m.Out, "\nEnter file number to parse (or 'q' to quit): ")
		if !scanner.Scan() {
			return LogFile{}, ErrQuit
		}
		choice := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(choice, "q") {
			return LogFile{}, ErrQuit
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(files) {
			fmt.Fprintf(m.Out, "Invalid selection. Enter a number between 1 and %d, or 'q' to quit.\n", len(files))
			continue
		}
		return files[n-1], nil
	}
}
