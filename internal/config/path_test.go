package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SECUREBANK_DIR", "/srv/securebank")

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: ":memory:", want: ":memory:"},
		{in: "~", want: home},
		{in: "~/journal.db", want: filepath.Join(home, "journal.db")},
		{in: "$SECUREBANK_DIR/journal.db", want: "/srv/securebank/journal.db"},
		{in: "/abs/path.db", want: "/abs/path.db"},
		{in: "~other/file", want: "~other/file"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
