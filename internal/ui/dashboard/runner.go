package dashboard

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/mirror-dash/internal/ui"
)

const maxFPS = 60

// FPS returns the redraw rate for a refresh interval: one frame per tick,
// clamped to [1, 60].
func FPS(interval time.Duration) int {
	if interval <= 0 {
		return maxFPS
	}
	fps := int(time.Second / interval)
	return min(max(fps, 1), maxFPS)
}

// Run owns the terminal for the lifetime of the dashboard. It returns when
// the user quits or ctx is cancelled; either way the program restores the
// terminal before Run returns.
func Run(ctx context.Context, m *Model, logger *zap.Logger, opts ...tea.ProgramOption) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	options := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
		tea.WithFPS(FPS(m.Interval())),
	}
	options = append(options, opts...)

	program := tea.NewProgram(ui.NewSafeUIWrapper(m, logger), options...)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("run dashboard: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Info("Interrupt received, stopping dashboard")
			program.Send(StopMsg{Reason: "interrupt"})
		}
		return nil
	})

	return g.Wait()
}
