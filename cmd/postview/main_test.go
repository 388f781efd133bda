package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/postview/internal/cli"
)

func TestMainComponents(t *testing.T) {
	t.Run("run function exists", func(_ *testing.T) {
		_ = run
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version)
		if root == nil {
			t.Fatal("expected root command to be non-nil")
		}
		assert.Equal(t, "postview", root.Use)
		assert.Equal(t, version, root.Version)
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error returns 0", err: nil, want: 0},
		{name: "generic error returns 1", err: errors.New("boom"), want: 1},
		{name: "wrapped error returns 1", err: errors.Join(errors.New("outer"), errors.New("inner")), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
