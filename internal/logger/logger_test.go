package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewWithWriter_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "default hides debug", debug: false, wantDebug: false},
		{name: "debug shows debug", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.debug, &buf)

			log.Debug("resolving browser", zap.String("browser", "chrome"))
			log.Warn("config degraded")
			_ = log.Sync()

			out := buf.String()
			assert.Contains(t, out, "config degraded")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("resolving browser")))
		})
	}
}

func TestNewWithWriter_NoInfoByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(false, &buf)

	log.Info("loaded config")
	_ = log.Sync()

	assert.Empty(t, buf.String())
}
