package logger

// Logger is the structured logging interface. Callers pass a constant
// message plus alternating key/value pairs:
//
//	log.Info("opened cipher context", "id", ctx.id, "algorithm", name)
type Logger interface {
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
	Fatal(msg string, keyvals ...interface{})
}
