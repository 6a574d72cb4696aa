package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winplace/internal/finder"
	"github.com/1broseidon/winplace/internal/logging"
	"github.com/1broseidon/winplace/internal/placement"
	"github.com/1broseidon/winplace/internal/tiling"
)

func (s *Server) handlePlaceWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args PlaceWindowInput) (*mcpsdk.CallToolResult, PlaceWindowOutput, error) {
	left, right, top, bottom, err := s.resolveEdges(args)
	if err != nil {
		return nil, PlaceWindowOutput{}, err
	}

	req := placement.Request{
		Criteria: finder.Criteria{
			ProcessName: strings.TrimSpace(args.Process),
			WindowTitle: args.Title,
			WindowClass: args.Class,
		},
		Monitor: args.Monitor,
		Left:    left,
		Right:   right,
		Top:     top,
		Bottom:  bottom,
		DryRun:  args.DryRun,
	}

	s.mu.Lock()
	res, err := s.placer.Place(req)
	s.mu.Unlock()
	if err != nil {
		return nil, PlaceWindowOutput{}, fmt.Errorf("place_window failed (exit %d): %w", placement.ExitCode(err), err)
	}

	out := PlaceWindowOutput{
		Window:    fmt.Sprintf("0x%X", uintptr(res.Target.Window)),
		Monitor:   fmt.Sprintf("0x%X", uintptr(res.Target.Monitor)),
		Alignment: res.Target.Alignment.String(),
		X:         res.Bounds.X,
		Y:         res.Bounds.Y,
		Width:     res.Bounds.Width,
		Height:    res.Bounds.Height,
		Applied:   res.Applied,
	}
	if res.ApplyErr != nil {
		out.Warning = "move request failed: " + res.ApplyErr.Error()
	}
	return nil, out, nil
}

// resolveEdges returns the preset's edges or the explicit ones. Range and
// ordering are checked later by the placer.
func (s *Server) resolveEdges(args PlaceWindowInput) (left, right, top, bottom float64, err error) {
	explicit := args.Left != nil || args.Right != nil || args.Top != nil || args.Bottom != nil
	if name := strings.TrimSpace(args.Preset); name != "" {
		if explicit {
			return 0, 0, 0, 0, fmt.Errorf("preset and explicit edges are mutually exclusive")
		}
		a, err := tiling.LookupPreset(s.presets, name)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		return a.Left(), a.Right(), a.Top(), a.Bottom(), nil
	}
	if args.Left == nil || args.Right == nil || args.Top == nil || args.Bottom == nil {
		return 0, 0, 0, 0, fmt.Errorf("either preset or all of left, right, top and bottom are required")
	}
	return *args.Left, *args.Right, *args.Top, *args.Bottom, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	s.mu.Lock()
	windows, err := s.placer.ListWindows()
	s.mu.Unlock()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	filter := strings.TrimSpace(args.Process)
	out := ListWindowsOutput{Windows: make([]WindowEntry, 0, len(windows))}
	for _, w := range windows {
		if filter != "" && !finder.EqualFoldASCII(w.ProcessName, filter) {
			continue
		}
		out.Windows = append(out.Windows, WindowEntry{
			ID:      fmt.Sprintf("0x%X", uintptr(w.ID)),
			PID:     w.PID,
			Process: w.ProcessName,
			Title:   w.Title,
			Class:   w.Class,
		})
	}
	s.logger.Debug(logging.ActionMatch, "listed windows", map[string]any{"count": len(out.Windows)})
	return nil, out, nil
}

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	s.mu.Lock()
	infos, err := s.placer.ListMonitors()
	s.mu.Unlock()
	if err != nil {
		return nil, ListMonitorsOutput{}, err
	}
	out := ListMonitorsOutput{Monitors: make([]MonitorEntry, 0, len(infos))}
	for _, m := range infos {
		out.Monitors = append(out.Monitors, MonitorEntry{
			Index:    m.Index,
			ID:       fmt.Sprintf("0x%X", uintptr(m.ID)),
			Name:     m.Name,
			Primary:  m.Primary,
			Bounds:   m.Bounds,
			WorkArea: m.WorkArea,
		})
	}
	return nil, out, nil
}

func (s *Server) handleListPresets(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListPresetsInput) (*mcpsdk.CallToolResult, ListPresetsOutput, error) {
	names := tiling.PresetNames(s.presets)
	out := ListPresetsOutput{Presets: make([]PresetInfo, 0, len(names))}
	for _, name := range names {
		p := s.presets[name]
		out.Presets = append(out.Presets, PresetInfo{Name: name, Left: p.Left, Right: p.Right, Top: p.Top, Bottom: p.Bottom})
	}
	return nil, out, nil
}
