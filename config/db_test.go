package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolSize(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{"unset uses default", "", 25},
		{"explicit", "50", 50},
		{"non-numeric falls back", "many", 25},
		{"non-positive falls back", "0", 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_MAX_OPEN_CONNS", tt.env)
			assert.Equal(t, tt.want, poolSize("DB_MAX_OPEN_CONNS", 25))
		})
	}
}
