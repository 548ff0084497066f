package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{"defaults are valid", Config{Env: "development", LatencyScale: 1, CurrentUsername: "current_user", LogLevel: "info"}, false},
		{"zero latency scale is valid", Config{LatencyScale: 0, CurrentUsername: "current_user", LogLevel: "info"}, false},
		{"negative latency scale", Config{LatencyScale: -0.5, CurrentUsername: "current_user", LogLevel: "info"}, true},
		{"missing sentinel username", Config{LatencyScale: 1, CurrentUsername: "", LogLevel: "info"}, true},
		{"unknown log level", Config{LatencyScale: 1, CurrentUsername: "current_user", LogLevel: "loud"}, true},
		{"debug log level", Config{LatencyScale: 1, CurrentUsername: "current_user", LogLevel: "debug"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
