package config

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger tagged with the component name, writing to w at
// the given level. Unknown levels fall back to info.
func NewLogger(component, level string, w io.Writer) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l.WithField("component", component)
}
