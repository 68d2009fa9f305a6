package core

// Logger is implemented by services/logger.
// args are free-form: errors, key/value maps and the current Session are all accepted.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
