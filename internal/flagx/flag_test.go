package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", "http://api", "-x", "1"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://api"},
		},
		{
			name:    "equals form",
			args:    []string{"-d=recruit.db", "-x=1"},
			allowed: []string{"-d"},
			want:    []string{"-d=recruit.db"},
		},
		{
			name:    "order preserved across forms",
			args:    []string{"-c=one.json", "-t", "5", "-c", "two.json"},
			allowed: []string{"-c", "-t"},
			want:    []string{"-c=one.json", "-t", "5", "-c", "two.json"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-z", "1", "positional", "--q=2"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next arg is a flag, not a value",
			args:    []string{"-c", "-t", "3"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "cfg.json", ConfigPath([]string{"-a", "x", "-c", "cfg.json"}))
	assert.Equal(t, "long.json", ConfigPath([]string{"-config=long.json"}))
	assert.Equal(t, "", ConfigPath([]string{"-a", "x"}))
	assert.Equal(t, "", ConfigPath(nil))
}
