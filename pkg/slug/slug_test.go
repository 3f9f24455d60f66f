package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Port Gamble Mill", "port-gamble-mill"},
		{"accents", "Café Métropole", "cafe-metropole"},
		{"punctuation", "Fort Worden: Battery Kinzie!", "fort-worden-battery-kinzie"},
		{"collapse_hyphens", "old -- ferry  landing", "old-ferry-landing"},
		{"trim_hyphens", "  (Keyport)  ", "keyport"},
		{"digits", "Highway 101 Bridge", "highway-101-bridge"},
		{"empty", "", ""},
		{"only_symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, From(tt.input))
		})
	}
}
