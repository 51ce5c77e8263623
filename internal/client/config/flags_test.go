package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	base := Config{APIBaseURL: "http://base/api", DatabasePath: "base.db", RequestTimeout: 1500 * time.Millisecond, LogLevel: "info"}

	tests := []struct {
		expected    Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "http://127.0.0.1:9090/api", "-d", "x.db", "-t", "10", "-l", "debug"},
			expected: Config{APIBaseURL: "http://127.0.0.1:9090/api", DatabasePath: "x.db", RequestTimeout: 10 * time.Second, LogLevel: "debug"}},
		{name: "no flags keep sub-second timeout", args: []string{"cmd"}, expected: base},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-x", "-d", "y.db"},
			expected: Config{APIBaseURL: "http://base/api", DatabasePath: "y.db", RequestTimeout: 1500 * time.Millisecond, LogLevel: "info"}},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := base

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(&cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(&cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
