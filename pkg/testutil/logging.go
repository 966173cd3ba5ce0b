package testutil

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func init() {
	var isVerbose bool
	for _, arg := range os.Args {
		if arg == "-test.v=true" {
			isVerbose = true
		}
	}

	logrus.SetLevel(logrus.TraceLevel)

	if !isVerbose {
		logrus.StandardLogger().Out = io.Discard
	}
}

// DisableLogging discards standard logger output. The returned func restores
// the logger's output, level and formatter, so tests that reconfigure the
// logger can defer it.
func DisableLogging() (reset func()) {
	logger := logrus.StandardLogger()
	out, level, formatter := logger.Out, logger.GetLevel(), logger.Formatter

	logger.SetOutput(io.Discard)
	return func() {
		logger.SetOutput(out)
		logger.SetLevel(level)
		logger.SetFormatter(formatter)
	}
}

// CaptureLogs records every entry written to the standard logger until
// reset is called.
func CaptureLogs() (hook *test.Hook, reset func()) {
	hook = test.NewLocal(logrus.StandardLogger())
	return hook, func() {
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	}
}
