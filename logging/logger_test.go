// api/logging/logger_test.go
package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLoggerHonorsConfiguredSinksAndLevel(t *testing.T) {
	dir := t.TempDir()
	viper.Set("log.fileName", "gateway.log")
	viper.Set("log.errorFileName", "gateway_error.log")
	viper.Set("log.level", "warn")
	t.Cleanup(func() {
		viper.Set("log.fileName", "")
		viper.Set("log.errorFileName", "")
		viper.Set("log.level", "")
	})

	InitLogger(dir)
	Info("routine detail")
	Warn("worth a look", zap.String("component", "catalog"))
	_ = Sync()

	data, err := os.ReadFile(filepath.Join(dir, "gateway.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "worth a look")
	assert.NotContains(t, string(data), "routine detail", "entries below the configured level must be filtered")
}

func TestInitLoggerDefaultsWithoutConfig(t *testing.T) {
	dir := t.TempDir()

	InitLogger(dir)
	Info("hello")
	_ = Sync()

	data, err := os.ReadFile(filepath.Join(dir, "api.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
