package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/fwdiff/internal/layout"
	"github.com/born-ml/fwdiff/internal/optim"
)

func TestLoadProblem_Default(t *testing.T) {
	p, err := loadProblem("", "")
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultProblem(), p)
}

func TestLoadProblem_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("points: 3\nconnections:\n  - [0, 2]\n"), 0o600))

	p, err := loadProblem(path, "")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Points)
	assert.Equal(t, []layout.Connection{{From: 0, To: 2}}, p.Connections)

	p, err = loadProblem(path, "0-1,1-2")
	require.NoError(t, err)
	assert.Equal(t, []layout.Connection{{From: 0, To: 1}, {From: 1, To: 2}}, p.Connections)
}

func TestLoadProblem_Errors(t *testing.T) {
	_, err := loadProblem(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)

	_, err = loadProblem("", "0-42")
	assert.True(t, errors.Is(err, layout.ErrBadConnection), "got %v", err)
}

func TestOptimizerFactory(t *testing.T) {
	gd, err := optimizerFactory("gd", 0.5)
	require.NoError(t, err)
	assert.IsType(t, &optim.GradientDescent{}, gd())
	assert.Equal(t, 0.5, gd().GetLR())

	adam, err := optimizerFactory("adam", 0.2)
	require.NoError(t, err)
	assert.IsType(t, &optim.Adam{}, adam())
	assert.NotSame(t, adam(), adam())

	_, err = optimizerFactory("lbfgs", 0.1)
	assert.Error(t, err)
}

func TestWriteSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	p := layout.DefaultProblem()
	require.NoError(t, writeSVG(path, p, layout.Circle(p.Points), "run"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>run</title>")
}
