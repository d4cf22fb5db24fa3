package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupFileSinkWritesJSONLines(t *testing.T) {
	file := filepath.Join(t.TempDir(), "trader.log")

	logger, closer, err := Setup("info", file)
	require.NoError(t, err)

	logger.WithField("symbol", "BTCUSDT").Info("placing market order")
	logger.Debug("suppressed at info level")
	require.NoError(t, closer.Close())

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, lines, 1)
	assert.Equal(t, "placing market order", lines[0]["msg"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "BTCUSDT", lines[0]["symbol"])
	assert.Contains(t, lines[0], "time")
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, _, err := Setup("loud", "")
	assert.Error(t, err)
}

func TestSetupWithoutFile(t *testing.T) {
	logger, closer, err := Setup("debug", "")
	require.NoError(t, err)
	assert.NotNil(t, logger)
	require.NoError(t, closer.Close())
}
