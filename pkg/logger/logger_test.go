package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env     string
		debugOn bool
	}{
		{env: "local", debugOn: true},
		{env: "dev", debugOn: true},
		{env: "production", debugOn: false},
		{env: "", debugOn: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log := New(tt.env)
			assert.NotNil(t, log)
			assert.Equal(t, tt.debugOn, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
