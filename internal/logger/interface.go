package logger

// Interface is the logging surface the traversal packages depend on
type Interface interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Report(format string, args ...interface{})
}

// Nop discards everything
type Nop struct{}

func (Nop) Debug(format string, args ...interface{})  {}
func (Nop) Info(format string, args ...interface{})   {}
func (Nop) Warn(format string, args ...interface{})   {}
func (Nop) Error(format string, args ...interface{})  {}
func (Nop) Report(format string, args ...interface{}) {}

var (
	_ Interface = (*Logger)(nil)
	_ Interface = Nop{}
)
