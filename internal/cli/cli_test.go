package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/houselist/internal/cli"
	"github.com/rshade/houselist/internal/config"
	"github.com/rshade/houselist/internal/listing"
)

// setupHome isolates configuration in a temp HOUSELIST_HOME and keeps logs quiet.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv("NO_COLOR", "1")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := cli.NewRootCmd("test")
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "houses.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const scenarioSeed = "- id: 1\n  address: A\n  country: USA\n  price: 500000\n"

func decodeRecords(t *testing.T, out string) []listing.Record {
	t.Helper()
	var records []listing.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	return records
}

func TestListCmd_DefaultHouses(t *testing.T) {
	setupHome(t)

	out, err := execute(t, "list", "--output", "json")
	require.NoError(t, err)
	assert.Equal(t, listing.DefaultHouses(), decodeRecords(t, out))
}

func TestListCmd_Scenario(t *testing.T) {
	setupHome(t)
	seed := writeSeed(t, scenarioSeed)

	out, err := execute(t, "list", "--seed", seed, "--output", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Houses currently on the market")
	assert.Contains(t, out, "$500,000.00")
	assert.NotContains(t, out, "32 Valley Way, New York")

	out, err = execute(t, "list", "--seed", seed, "--add", "1", "--output", "json")
	require.NoError(t, err)
	records := decodeRecords(t, out)
	require.Len(t, records, 2)
	assert.Equal(t, listing.Record{ID: 1, Address: "A", Country: "USA", Price: 500000}, records[0])
	assert.Equal(t, listing.NewHouse(), records[1])
}

func TestListCmd_AddKeepsDuplicates(t *testing.T) {
	setupHome(t)
	seed := writeSeed(t, scenarioSeed)

	out, err := execute(t, "list", "--seed", seed, "--add", "3", "--output", "plain")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "32 Valley Way, New York"))
	assert.Equal(t, 3, strings.Count(out, "$1,000,000.00"))
}

func TestListCmd_TableFallsBackToPlainWhenPiped(t *testing.T) {
	setupHome(t)

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Asking Price")
	assert.Contains(t, out, "[ Add House ]")
	assert.Contains(t, out, "$900,000.00")
}

func TestListCmd_CurrencyFlag(t *testing.T) {
	setupHome(t)
	seed := writeSeed(t, scenarioSeed)

	out, err := execute(t, "list", "--seed", seed, "--currency", "EUR", "--output", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "€500,000.00")
}

func TestListCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "negative add", args: []string{"list", "--add", "-1"}},
		{name: "unknown output", args: []string{"list", "--output", "yaml"}},
		{name: "missing seed", args: []string{"list", "--seed", "/does/not/exist.yaml"}},
		{name: "invalid currency", args: []string{"list", "--currency", "NOPE"}},
		{name: "unexpected argument", args: []string{"list", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHome(t)
			_, err := execute(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestListCmd_SeedFromEnvironment(t *testing.T) {
	setupHome(t)
	t.Setenv(config.EnvSeedFile, writeSeed(t, scenarioSeed))

	out, err := execute(t, "list", "--output", "json")
	require.NoError(t, err)
	assert.Len(t, decodeRecords(t, out), 1)
}

func TestListCmd_ConfigFlag(t *testing.T) {
	setupHome(t)
	seed := writeSeed(t, scenarioSeed)
	cfgPath := filepath.Join(t.TempDir(), "custom.yaml")
	content := "seed:\n  file: " + seed + "\ndisplay:\n  title: Open houses\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	out, err := execute(t, "--config", cfgPath, "list", "--output", "plain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Open houses\n"))
	assert.Contains(t, out, "$500,000.00")
}

func TestListCmd_ConfigFlagLoadsDotEnv(t *testing.T) {
	setupHome(t)
	t.Setenv(config.EnvTitle, "")
	require.NoError(t, os.Unsetenv(config.EnvTitle))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(config.EnvTitle+"=Dotenv houses\n"), 0o600))
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  default_format: plain\n"), 0o600))
	t.Chdir(dir)

	out, err := execute(t, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Dotenv houses\n"), out)
}

func TestBrowseCmd_NonInteractiveFallback(t *testing.T) {
	setupHome(t)
	seed := writeSeed(t, scenarioSeed)

	out, err := execute(t, "browse", "--seed", seed)
	require.NoError(t, err)
	assert.Contains(t, out, "Asking Price")
	assert.Contains(t, out, "$500,000.00")
}

func TestSeedInitCmd(t *testing.T) {
	home := setupHome(t)

	out, err := execute(t, "seed", "init")
	require.NoError(t, err)
	path := filepath.Join(home, "houses.yaml")
	assert.Contains(t, out, path)

	_, err = execute(t, "seed", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "seed", "init", "--force")
	require.NoError(t, err)

	out, err = execute(t, "list", "--seed", path, "--output", "json")
	require.NoError(t, err)
	assert.Equal(t, listing.DefaultHouses(), decodeRecords(t, out))
}

func TestRootCmd(t *testing.T) {
	setupHome(t)
	root := cli.NewRootCmd("1.2.3")

	assert.Equal(t, "houselist", root.Use)
	assert.Equal(t, "1.2.3", root.Version)
	for _, name := range []string{"debug", "config", "currency"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"list", "browse", "seed", "config"})

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}
