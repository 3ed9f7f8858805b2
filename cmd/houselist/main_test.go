package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/houselist/internal/cli"
	"github.com/rshade/houselist/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("run function exists", func(t *testing.T) {
		_ = run
	})

	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "houselist", root.Use)
		assert.Equal(t, version.GetVersion(), root.Version)
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}
