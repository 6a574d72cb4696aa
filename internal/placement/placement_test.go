package placement

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/winplace/internal/finder"
	"github.com/1broseidon/winplace/internal/logging"
	"github.com/1broseidon/winplace/internal/platform"
	"github.com/1broseidon/winplace/internal/platform/platformtest"
)

func intPtr(i int) *int { return &i }

func notesDesktop() *platformtest.Backend {
	return &platformtest.Backend{
		Windows: []platformtest.Window{
			{ID: 0x101, PID: 40, Visible: true, Title: "Untitled - Notes", Class: "NotesWnd"},
		},
		Processes: map[int]string{40: "Notes.exe"},
		Monitors: []platform.Monitor{
			platformtest.Screen(1, "primary", platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}),
		},
	}
}

func TestPlace_EndToEndLeftHalf(t *testing.T) {
	b := notesDesktop()
	p := NewPlacer(b, nil, Options{})

	res, err := p.Place(Request{
		Criteria: finder.Criteria{ProcessName: "Notes.exe"},
		Monitor:  intPtr(1),
		Left:     0, Right: 50, Top: 0, Bottom: 100,
	})
	require.NoError(t, err)
	assert.True(t, res.Applied)

	require.Len(t, b.Moves, 1)
	assert.Equal(t, platformtest.MoveCall{
		Window: 0x101,
		Bounds: platform.Rect{X: 0, Y: 0, Width: 960, Height: 1080},
	}, b.Moves[0])
}

func TestPlace_DegenerateAlignmentDoesNotMutate(t *testing.T) {
	b := notesDesktop()
	_, err := NewPlacer(b, nil, Options{}).Place(Request{
		Criteria: finder.Criteria{ProcessName: "Notes.exe"},
		Monitor:  intPtr(1),
		Left:     60, Right: 50, Top: 0, Bottom: 100,
	})

	var pe *Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, KindDegenerateAlignmentRegion, pe.Kind)
	assert.Equal(t, ExitInvalidAlignment, ExitCode(err))
	assert.Empty(t, b.Moves)
}

func TestPlace_FailureKindsAndExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(b *platformtest.Backend)
		req      Request
		wantKind Kind
		wantExit int
	}{
		{
			name:     "window not found",
			req:      Request{Criteria: finder.Criteria{ProcessName: "Spotify.exe"}, Monitor: intPtr(1), Right: 100, Bottom: 100},
			wantKind: KindWindowNotFound,
			wantExit: 1,
		},
		{
			name:     "enumeration failed",
			mutate:   func(b *platformtest.Backend) { b.EnumMonitorsErr = errors.New("gdi") },
			req:      Request{Criteria: finder.Criteria{ProcessName: "Notes.exe"}, Monitor: intPtr(1), Right: 100, Bottom: 100},
			wantKind: KindMonitorEnumerationFailed,
			wantExit: 2,
		},
		{
			name:     "no monitors",
			mutate:   func(b *platformtest.Backend) { b.Monitors = nil },
			req:      Request{Criteria: finder.Criteria{ProcessName: "Notes.exe"}, Monitor: intPtr(1), Right: 100, Bottom: 100},
			wantKind: KindNoMonitorsAvailable,
			wantExit: 3,
		},
		{
			name:     "index zero",
			req:      Request{Criteria: finder.Criteria{ProcessName: "Notes.exe"}, Monitor: intPtr(0), Right: 100, Bottom: 100},
			wantKind: KindInvalidMonitorIndex,
			wantExit: 4,
		},
		{
			name:     "index out of range",
			req:      Request{Criteria: finder.Criteria{ProcessName: "Notes.exe"}, Monitor: intPtr(5), Right: 100, Bottom: 100},
			wantKind: KindInvalidMonitorIndex,
			wantExit: 4,
		},
		{
			name:     "offset out of range",
			req:      Request{Criteria: finder.Criteria{ProcessName: "Notes.exe"}, Monitor: intPtr(1), Right: 100, Bottom: 120},
			wantKind: KindAlignmentOutOfRange,
			wantExit: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := notesDesktop()
			if tt.mutate != nil {
				tt.mutate(b)
			}
			_, err := NewPlacer(b, nil, Options{}).Place(tt.req)

			var pe *Error
			require.True(t, errors.As(err, &pe), "expected *Error, got %v", err)
			assert.Equal(t, tt.wantKind, pe.Kind)
			assert.Equal(t, tt.wantExit, ExitCode(err))
			assert.Empty(t, b.Moves)
		})
	}
}

func TestPlace_WindowMatchedBeforeMonitorValidated(t *testing.T) {
	b := notesDesktop()
	_, err := NewPlacer(b, nil, Options{}).Place(Request{
		Criteria: finder.Criteria{ProcessName: "missing.exe"},
		Monitor:  intPtr(0),
		Left:     60, Right: 50,
	})
	assert.Equal(t, ExitWindowNotFound, ExitCode(err))
}

func TestPlace_BestEffortApply(t *testing.T) {
	b := notesDesktop()
	b.SetWindowPosErr = errors.New("window destroyed")

	res, err := NewPlacer(b, nil, Options{}).Place(Request{
		Criteria: finder.Criteria{ProcessName: "notes.exe"},
		Monitor:  intPtr(1),
		Right:    100, Bottom: 100,
	})
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.EqualError(t, res.ApplyErr, "window destroyed")
}

func TestPlace_StrictApply(t *testing.T) {
	b := notesDesktop()
	b.SetWindowPosErr = errors.New("window destroyed")

	_, err := NewPlacer(b, nil, Options{StrictApply: true}).Place(Request{
		Criteria: finder.Criteria{ProcessName: "notes.exe"},
		Monitor:  intPtr(1),
		Right:    100, Bottom: 100,
	})
	assert.Equal(t, ExitApplyFailed, ExitCode(err))
}

func TestPlace_DryRunSkipsApply(t *testing.T) {
	b := notesDesktop()
	res, err := NewPlacer(b, nil, Options{}).Place(Request{
		Criteria: finder.Criteria{ProcessName: "Notes.exe"},
		Monitor:  intPtr(1),
		Left:     25, Right: 75, Top: 25, Bottom: 75,
		DryRun: true,
	})
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Equal(t, platform.Rect{X: 480, Y: 270, Width: 960, Height: 540}, res.Bounds)
	assert.Empty(t, b.Moves)
}

func TestPlace_MonitorFallbacks(t *testing.T) {
	newBackend := func() *platformtest.Backend {
		b := notesDesktop()
		second := platformtest.Screen(2, "secondary", platform.Rect{X: 1920, Y: 0, Width: 1280, Height: 1024})
		second.Primary = true
		b.Monitors = append(b.Monitors, second)
		b.Windows[0].Monitor = 1
		return b
	}
	req := Request{Criteria: finder.Criteria{ProcessName: "Notes.exe"}, Right: 100, Bottom: 100}

	res, err := NewPlacer(newBackend(), nil, Options{}).Place(req)
	require.NoError(t, err)
	assert.Equal(t, platform.MonitorID(1), res.Target.Monitor)

	res, err = NewPlacer(newBackend(), nil, Options{Fallback: FallbackPrimary}).Place(req)
	require.NoError(t, err)
	assert.Equal(t, platform.MonitorID(2), res.Target.Monitor)
	assert.Equal(t, platform.Rect{X: 1920, Y: 0, Width: 1280, Height: 1024}, res.Bounds)
}

func TestPlace_LogsSkippedProcesses(t *testing.T) {
	b := notesDesktop()
	b.Windows = append([]platformtest.Window{{ID: 0x99, PID: 666, Visible: true}}, b.Windows...)

	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Console: &buf, ConsoleLevel: logging.LevelDebug})
	require.NoError(t, err)

	_, err = NewPlacer(b, logger, Options{}).Place(Request{
		Criteria: finder.Criteria{ProcessName: "Notes.exe"},
		Monitor:  intPtr(1),
		Right:    100, Bottom: 100,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[SKIP] process query failed")
	assert.Contains(t, buf.String(), "[APPLY] moving window")
}

func TestError_Message(t *testing.T) {
	b := notesDesktop()
	_, err := NewPlacer(b, nil, Options{}).Place(Request{
		Criteria: finder.Criteria{ProcessName: "Notes.exe"},
		Monitor:  intPtr(3),
		Right:    100, Bottom: 100,
	})
	assert.EqualError(t, err, "invalid monitor index: index 3, 1 monitor(s) available")
}

func TestExitCode_NonPlacementErrors(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitStartup, ExitCode(errors.New("x11 unavailable")))
	assert.Equal(t, ExitWindowNotFound, ExitCode(fmt.Errorf("wrapped: %w", &Error{Kind: KindWindowNotFound})))
}
