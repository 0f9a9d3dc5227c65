package config

import "github.com/sirupsen/logrus"

// ConfigureLogger applies LOG_LEVEL and LOG_FORMAT to l.  An unknown level
// falls back to info.
func (c Config) ConfigureLogger(l *logrus.Logger) {
    level, err := logrus.ParseLevel(c.LogLevel)
    if err != nil {
        l.WithField("level", c.LogLevel).Warn("config: unknown log level, using info")
        level = logrus.InfoLevel
    }
    l.SetLevel(level)
    if c.LogFormat == "json" {
        l.SetFormatter(&logrus.JSONFormatter{})
        return
    }
    l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
