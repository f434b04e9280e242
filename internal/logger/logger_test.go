package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		debug     bool
		wantDebug bool
	}{
		{name: "production", env: "production", debug: true, wantDebug: false},
		{name: "development debug", env: "development", debug: true, wantDebug: true},
		{name: "development quiet", env: "development", debug: false, wantDebug: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.env, tt.debug)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebug, log.Core().Enabled(zap.DebugLevel))
			assert.True(t, log.Core().Enabled(zap.InfoLevel))
		})
	}
}
