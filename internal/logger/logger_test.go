package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env       string
		json      bool
		wantDebug bool
	}{
		{"dev", false, true},
		{"", false, true},
		{"staging", true, true},
		{"prod", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.env, &buf)

			log.Debug("debug line")
			log.Info("info line")

			out := buf.String()
			assert.Contains(t, out, "info line")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))

			if tt.json {
				first, _, _ := bytes.Cut(buf.Bytes(), []byte("\n"))
				var rec map[string]any
				require.NoError(t, json.Unmarshal(first, &rec))
			}
		})
	}
}
