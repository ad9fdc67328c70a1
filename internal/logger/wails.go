package logger

// Wails adapts the global logger to the shell's logger interface
// (github.com/wailsapp/wails/v2/pkg/logger.Logger) so runtime messages end
// up in the same rotating file as ours.
type Wails struct{}

func (Wails) Print(message string)   { Info(message, "src", "wails") }
func (Wails) Trace(message string)   { Debug(message, "src", "wails") }
func (Wails) Debug(message string)   { Debug(message, "src", "wails") }
func (Wails) Info(message string)    { Info(message, "src", "wails") }
func (Wails) Warning(message string) { Warn(message, "src", "wails") }
func (Wails) Error(message string)   { Error(message, "src", "wails") }

// Fatal is reported as an error; the shell decides whether to exit.
func (Wails) Fatal(message string) { Error(message, "src", "wails", "fatal", true) }
