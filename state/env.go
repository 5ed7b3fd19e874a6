// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"svgprops/config"
	"svgprops/css"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by extract subcommand
	NoDirs    bool
	Overwrite bool
	Format    config.OutputFmt
	CodePage  encoding.Encoding
	// style sheet applied to every SVG document ahead of its own rules
	Stylesheet *css.Stylesheet
	Stats      Stats

	start         time.Time
	restoreStdLog func()
}

// Stats counts outcomes of sources processed during single run.
type Stats struct {
	Sources int // sources attempted
	Failed  int // sources without output
	Records int // records written
}

// Count accounts for single processed source.
func (s *Stats) Count(records int, err error) {
	s.Sources++
	if err != nil {
		s.Failed++
		return
	}
	s.Records += records
}

// Fields returns counters ready for logging.
func (s *Stats) Fields() []zap.Field {
	return []zap.Field{zap.Int("sources", s.Sources), zap.Int("failed", s.Failed), zap.Int("records", s.Records)}
}

func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
}
