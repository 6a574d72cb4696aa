package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/1broseidon/winplace/internal/finder"
	"github.com/1broseidon/winplace/internal/monitors"
	"github.com/1broseidon/winplace/internal/placement"
	"github.com/1broseidon/winplace/internal/tiling"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))

func runList(placer *placement.Placer, stdout, stderr io.Writer, opts options) int {
	if opts.listWindows {
		windows, err := placer.ListWindows()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return placement.ExitWindowNotFound
		}
		if err := printWindows(stdout, windows, opts.jsonOut); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return placement.ExitStartup
		}
	}
	if opts.listMonitors {
		infos, err := placer.ListMonitors()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return placement.ExitCode(err)
		}
		if err := printMonitors(stdout, infos, opts.jsonOut); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return placement.ExitStartup
		}
	}
	return placement.ExitOK
}

func printWindows(w io.Writer, windows []finder.WindowInfo, asJSON bool) error {
	if asJSON {
		return writeJSON(w, windows)
	}
	rows := make([][]string, 0, len(windows))
	for _, win := range windows {
		rows = append(rows, []string{
			fmt.Sprintf("0x%X", uintptr(win.ID)),
			strconv.Itoa(win.PID),
			win.ProcessName,
			win.Class,
			win.Title,
		})
	}
	return writeTable(w, []string{"ID", "PID", "PROCESS", "CLASS", "TITLE"}, rows)
}

func printMonitors(w io.Writer, infos []monitors.Info, asJSON bool) error {
	if asJSON {
		return writeJSON(w, infos)
	}
	rows := make([][]string, 0, len(infos))
	for _, m := range infos {
		primary := ""
		if m.Primary {
			primary = "*"
		}
		rows = append(rows, []string{
			strconv.Itoa(m.Index),
			m.Name,
			primary,
			fmt.Sprintf("%d,%d %dx%d", m.Bounds.X, m.Bounds.Y, m.Bounds.Width, m.Bounds.Height),
			fmt.Sprintf("%d,%d %dx%d", m.WorkArea.Left, m.WorkArea.Top, m.WorkArea.Width(), m.WorkArea.Height()),
		})
	}
	return writeTable(w, []string{"INDEX", "NAME", "PRIMARY", "BOUNDS", "WORK AREA"}, rows)
}

func printPresets(w io.Writer, presets map[string]tiling.Preset, asJSON bool) error {
	names := tiling.PresetNames(presets)
	if asJSON {
		type entry struct {
			Name string `json:"name"`
			tiling.Preset
		}
		out := make([]entry, 0, len(names))
		for _, name := range names {
			out = append(out, entry{Name: name, Preset: presets[name]})
		}
		return writeJSON(w, out)
	}
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		p := presets[name]
		rows = append(rows, []string{name, percent(p.Left), percent(p.Right), percent(p.Top), percent(p.Bottom)})
	}
	return writeTable(w, []string{"NAME", "LEFT", "RIGHT", "TOP", "BOTTOM"}, rows)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTable prints space-aligned columns. On a terminal the header is bold
// and rows are truncated to the terminal width.
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	tty, width := terminalWidth(w)

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}

	line := func(cells []string) string {
		var b strings.Builder
		for i, cell := range cells {
			b.WriteString(cell)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-ansi.StringWidth(cell)+2))
			}
		}
		s := strings.TrimRight(b.String(), " ")
		if width > 0 {
			s = ansi.Truncate(s, width, "…")
		}
		return s
	}

	header := line(headers)
	if tty {
		header = headerStyle.Render(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, line(row)); err != nil {
			return err
		}
	}
	return nil
}

func terminalWidth(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return true, 0
	}
	return true, width
}
