package minion

// Options contains options for a spawned service loop.
type Options struct {
	// A friendly name for the service loop (optional). It is attached
	// to every log message.
	Name string
	// Sets the Logger to use to log loop events. If nil, the logging
	// messages are discarded.
	Logger Logger
}

func (o Options) copy() *Options {
	return &o
}
