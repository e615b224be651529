package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantLevel log.Level
		wantDebug bool
	}{
		{name: "info by default", debug: false, wantLevel: log.InfoLevel, wantDebug: false},
		{name: "debug enabled", debug: true, wantLevel: log.DebugLevel, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, Options{Debug: tt.debug})

			logger.Debug("probing", "dep", "hgnc")
			logger.Info("loaded", "rows", 3)

			assert.Equal(t, tt.wantLevel, logger.GetLevel())
			assert.Contains(t, buf.String(), "loaded")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("probing")))
		})
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() {
		logger.Warn("dropped", "err", assert.AnError)
	})
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}
