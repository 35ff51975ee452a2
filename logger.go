package nemcrypto

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Logger receives debug output from message encryption.
// It logs at Info level unless the LOG environment variable names another level.
// Secret material is never logged.
var Logger = logrus.New()

func init() {
	if x, exists := os.LookupEnv("LOG"); exists {
		if err := SetLogLevel(x); err != nil {
			Logger.Warnf("ignoring LOG=%q: %v", x, err)
		}
	}
}

// SetLogLevel sets the level of Logger by name. e.g. "debug", "info", "warning"
func SetLogLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return errors.Wrapf(ErrIllegalArgument, "unknown log level %q", name)
	}
	Logger.SetLevel(level)
	return nil
}

// SetLogger replaces Logger. Passing nil restores a default logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.New()
	}
	Logger = l
}
