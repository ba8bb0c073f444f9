package sequence

import "github.com/kbukum/seqkit/logger"

// PullObserver is notified of every pull made through an observed stage.
// observability.PullRecorder implements it with OpenTelemetry counters.
type PullObserver interface {
	ObservePull(stage string, ok bool)
}

// Observed reports each pull of s to obs under the given stage name,
// including the pull that reports exhaustion.
func (s *Sequence[T]) Observed(obs PullObserver, stage string) *Sequence[T] {
	return derive(s, &observedCursor[T]{source: s, obs: obs, stage: stage})
}

// Logged logs values at debug level as they pass through, and logs once
// when the stage is exhausted.
func (s *Sequence[T]) Logged(log *logger.Logger, stage string) *Sequence[T] {
	return derive(s, &loggedCursor[T]{
		source: s,
		log:    log.WithComponent("sequence"),
		stage:  stage,
	})
}

type observedCursor[T any] struct {
	source Cursor[T]
	obs    PullObserver
	stage  string
}

func (c *observedCursor[T]) Pull() (T, bool) {
	val, ok := c.source.Pull()
	c.obs.ObservePull(c.stage, ok)
	return val, ok
}

type loggedCursor[T any] struct {
	source Cursor[T]
	log    *logger.Logger
	stage  string
	pulled int
}

func (c *loggedCursor[T]) Pull() (T, bool) {
	val, ok := c.source.Pull()
	if !ok {
		c.log.Debug("sequence exhausted", logger.Fields(
			logger.FieldStage, c.stage,
			"pulled", c.pulled,
		))
		return val, false
	}
	c.log.Debug("next value", logger.Fields(
		logger.FieldStage, c.stage,
		"index", c.pulled,
		"value", val,
	))
	c.pulled++
	return val, true
}
