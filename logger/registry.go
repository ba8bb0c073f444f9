package logger

import "sync"

// Named loggers by component name. Init clears them.
var (
	namedMu sync.RWMutex
	named   = map[string]*Logger{}
)

// Register stores l under name; Get returns it from then on.
func Register(name string, l *Logger) {
	namedMu.Lock()
	defer namedMu.Unlock()
	named[name] = l
}

// Get returns the logger registered under name. An unknown name gets a
// component logger derived from the global logger, which is kept for later
// calls.
func Get(name string) *Logger {
	namedMu.RLock()
	l, ok := named[name]
	namedMu.RUnlock()
	if ok {
		return l
	}

	namedMu.Lock()
	defer namedMu.Unlock()
	if l, ok := named[name]; ok {
		return l
	}
	l = GetGlobalLogger().WithComponent(name)
	named[name] = l
	return l
}

func resetNamed() {
	namedMu.Lock()
	defer namedMu.Unlock()
	clear(named)
}
