package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/dino-compare/internal/dataset"
	"github.com/aanand-mishra/dino-compare/internal/storage/sqlite"
	"github.com/aanand-mishra/dino-compare/internal/types"
	"github.com/aanand-mishra/dino-compare/internal/validation"
)

func datasetPath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "static", "dino.json")
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCompareCommand(t *testing.T) {
	out, _, err := run(t, "compare",
		"--dataset", datasetPath(t),
		"--seed", "1",
		"--name", "Rex", "--feet", "5", "--inches", "10", "--weight", "180", "--diet", "Herbivore")
	require.NoError(t, err)

	assert.Contains(t, out, "[5] Rex (you)")
	assert.Equal(t, 9, strings.Count(out, "images/"))
}

func TestCompareCommandInvalid(t *testing.T) {
	_, errOut, err := run(t, "compare", "--dataset", datasetPath(t), "--name", "Al", "--feet", "5", "--inches", "1", "--weight", "100")
	require.Error(t, err)

	assert.Contains(t, errOut, validation.MsgIncomplete)
	assert.Contains(t, errOut, validation.MsgNameShort)
}

func TestOpenCatalogSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	dinos := testDinos(t)

	catalog, stored, closeFn, err := openCatalog(path, dinos)
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &sqlite.SQLite{}, catalog)
	assert.Equal(t, dinos, stored)
}

func TestOpenCatalogMemory(t *testing.T) {
	dinos := testDinos(t)

	catalog, stored, closeFn, err := openCatalog("", dinos)
	require.NoError(t, err)
	defer closeFn()

	got, err := catalog.GetDinosaurs()
	require.NoError(t, err)
	assert.Equal(t, dinos, got)
	assert.Equal(t, dinos, stored)
}

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{"dev", "staging", "prod", ""} {
		assert.NotNil(t, setupLogger(env), env)
	}
}

func TestServeRequiresConfig(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	_, _, err := run(t, "serve")
	assert.Error(t, err)

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, statErr := os.Stat(missing)
	require.True(t, os.IsNotExist(statErr))
	_, _, err = run(t, "serve", "--config", missing)
	assert.ErrorContains(t, err, "does not exist")
}

func testDinos(t *testing.T) []types.Dinosaur {
	t.Helper()
	dinos, err := dataset.Load(context.Background(), datasetPath(t))
	require.NoError(t, err)
	return dinos
}
