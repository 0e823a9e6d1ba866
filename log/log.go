// Package log provides logging for control-thread components. Nothing
// on the audio path logs.
package log

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

var debug bool

// Logger is the interface graph components log through. Components
// only ever log diagnostics, so debug level is all it carries.
type Logger interface {
	Debugf(format string, args ...interface{})
}

func init() {
	var err error
	debug, err = strconv.ParseBool(os.Getenv("GRAPH_DEBUG"))
	if err != nil {
		debug = false
	}
}

// Default returns a new logger instance. Debug level is enabled with
// the GRAPH_DEBUG env variable.
func Default() *logrus.Logger {
	l := logrus.New()
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
