package zap

import (
	"github.com/unkn0wn-root/framewire"
	"go.uber.org/zap"
)

var _ framewire.Logger = Logger{}

// Logger adapts a *zap.Logger to framewire.Logger.
type Logger struct{ L *zap.Logger }

func (z Logger) Debug(msg string, f framewire.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f framewire.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f framewire.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f framewire.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f framewire.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
