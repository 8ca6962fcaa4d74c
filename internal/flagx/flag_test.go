package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-c", "--config"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"separate value", []string{"-c", "conf.json", "-a", "http://x"}, []string{"-c", "conf.json"}},
		{"equals form", []string{"--config=alt.json", "-a", "http://x"}, []string{"--config=alt.json"}},
		{"order preserved", []string{"--config=first.json", "-c", "second.json", "-x", "1"}, []string{"--config=first.json", "-c", "second.json"}},
		{"unknown flags ignored", []string{"-x", "1", "--y=2", "positional"}, []string{}},
		{"dangling flag kept", []string{"-c"}, []string{"-c"}},
		{"flag value never starts with dash", []string{"-c", "-d"}, []string{"-c"}},
		{"equals value may start with dash", []string{"--config=--weird.json"}, []string{"--config=--weird.json"}},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"bin", "-c", "a.json"}, "a.json"},
		{"long with equals", []string{"bin", "-a", "http://x", "-config=b.json"}, "b.json"},
		{"absent", []string{"bin", "-a", "http://x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
