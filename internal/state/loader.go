package state

import (
	"errors"
	"io/fs"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Default state file names, relative to the working directory.
const (
	DefaultExecutorFile = "dashboard-executor.json"
	DefaultWatcherFile  = "dashboard-watcher.json"
)

// Loader reads state snapshots written by external processes. It never
// reports errors to callers: a missing, unreadable or half-written file is
// simply absent for this tick.
type Loader struct {
	fs     afero.Fs
	logger *zap.Logger

	// Statistics (accessed atomically)
	reads    uint64
	missing  uint64
	failures uint64
}

// LoaderStats is a point-in-time copy of loader counters.
type LoaderStats struct {
	Reads    uint64
	Missing  uint64
	Failures uint64
}

// NewLoader creates a loader reading through fsys.
func NewLoader(fsys afero.Fs, logger *zap.Logger) *Loader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		fs:     fsys,
		logger: logger.Named("state_loader"),
	}
}

// LoadExecutor returns the executor snapshot at path, or nil.
func (l *Loader) LoadExecutor(path string) *ExecutorState {
	return Load[ExecutorState](l, path)
}

// LoadWatcher returns the watcher snapshot at path, or nil.
func (l *Loader) LoadWatcher(path string) *WatcherState {
	return Load[WatcherState](l, path)
}

// Stats returns loader counters.
func (l *Loader) Stats() LoaderStats {
	return LoaderStats{
		Reads:    atomic.LoadUint64(&l.reads),
		Missing:  atomic.LoadUint64(&l.missing),
		Failures: atomic.LoadUint64(&l.failures),
	}
}

// Load reads and decodes the JSON object at path into a fresh T. It returns
// nil when the file is missing, unreadable, not a JSON object, or an empty
// object.
func Load[T any](l *Loader, path string) *T {
	atomic.AddUint64(&l.reads, 1)

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			atomic.AddUint64(&l.missing, 1)
			l.logger.Debug("State file not present", zap.String("path", path))
			return nil
		}
		atomic.AddUint64(&l.failures, 1)
		l.logger.Debug("State file unreadable", zap.String("path", path), zap.Error(err))
		return nil
	}

	// An object with no keys carries nothing to show; treat it like a
	// producer that has not written yet.
	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || len(fields) == 0 {
		atomic.AddUint64(&l.failures, 1)
		l.logger.Debug("State file not a usable JSON object",
			zap.String("path", path),
			zap.Int("bytes", len(data)),
			zap.Error(err))
		return nil
	}

	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		atomic.AddUint64(&l.failures, 1)
		l.logger.Debug("State file has unexpected shape", zap.String("path", path), zap.Error(err))
		return nil
	}
	return out
}
