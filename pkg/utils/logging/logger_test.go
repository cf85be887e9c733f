package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/folio/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() {
		_ = logging.Configure("text", "info", "stdout")
	})

	t.Run("configure with json format to stdout", func(t *testing.T) {
		gt.NoError(t, logging.Configure("json", "info", "stdout"))
	})

	t.Run("configure with text format and trace level", func(t *testing.T) {
		gt.NoError(t, logging.Configure("text", "trace", "-"))
	})

	t.Run("configure with file output writes the log", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "folio.log")
		gt.NoError(t, logging.Configure("json", "debug", path))

		logging.Default().Info("hello", "key", "value")

		data := gt.R1(os.ReadFile(path)).NoError(t)
		gt.S(t, string(data)).Contains(`"msg":"hello"`)
	})

	t.Run("configure with invalid format returns error", func(t *testing.T) {
		gt.Error(t, logging.Configure("invalid", "info", "stdout"))
	})

	t.Run("configure with invalid level returns error", func(t *testing.T) {
		gt.Error(t, logging.Configure("json", "invalid", "stdout"))
	})
}

func TestDefault(t *testing.T) {
	logger := logging.Default()
	logger.Info("test message", "key", "value")
}
