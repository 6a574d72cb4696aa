package main

import (
	"fmt"
	"io"
)

const usageText = `Usage: winplace [flags] <monitorIndex> <left> <right> <top> <bottom> <processName> [windowTitle] [windowClass]

Move the first visible window owned by processName onto a region of a
monitor's work area. Edges are percentages (0-100) of the work area with
left < right and top < bottom.

Arguments:
  monitorIndex   1-based monitor index
  left, right    horizontal edges in percent
  top, bottom    vertical edges in percent
  processName    executable name, case-insensitive (e.g. Notes.exe, firefox)
  windowTitle    optional exact title, case-insensitive
  windowClass    optional exact window class, case-insensitive

Flags:
  -config <path>    config file (default ~/.config/winplace/config.yaml)
  -display <name>   X11 display (default $DISPLAY)
  -dry-run          print the target rectangle without moving the window
  -json             print listings as JSON
  -list-monitors    list monitors
  -list-presets     list alignment presets
  -list-windows     list visible windows
  -mcp              serve MCP tools on stdio
  -v                verbose logging to stderr

Exit codes:
  0  success or usage
  1  window not found
  2  monitor enumeration failed
  3  no monitors found
  4  invalid monitor index
  5  invalid alignment
  6  move failed (strict_apply only)
  7  start-up failure

Example:
  winplace 1 0 50 0 100 Notes.exe
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
