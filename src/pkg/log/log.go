package log

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Log struct singleton
type Log struct {
	AppName  string
	LogLevel int
	Logger   *logrus.Logger
}

var logger Log

var mapOfLogLevel = map[string]int{
	"DEBUG": 1,
	"ERROR": 2,
}

// InitLogger initialize logger from Viper
func InitLogger(v *viper.Viper) {
	levelStr := v.GetString("log.level")
	appName := v.GetString("app.name")

	logger = Log{
		AppName:  appName,
		LogLevel: mapOfLogLevel[levelStr],
		Logger:   newLogrusLogger(v),
	}
}

// GetLogger return singleton
func GetLogger() Log {
	return logger
}

func newLogrusLogger(v *viper.Viper) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return l
}

func (l Log) Info(context, message, scope, meta string) {
	if l.Logger == nil {
		return
	}
	if l.LogLevel <= 1 {
		_, file, line, _ := runtime.Caller(1)
		l.Logger.WithFields(logrus.Fields{
			"service": l.AppName,
			"context": context,
			"scope":   scope,
			"meta":    meta,
			"file":    file,
			"line":    line,
		}).Info(message)
	}
}

func (l Log) Error(context, message, scope, meta string) {
	if l.Logger == nil {
		return
	}
	if l.LogLevel <= 2 {
		_, file, line, _ := runtime.Caller(1)
		l.Logger.WithFields(logrus.Fields{
			"service": l.AppName,
			"context": context,
			"scope":   scope,
			"meta":    meta,
			"file":    fmt.Sprintf("%s:%d", file, line),
		}).Error(message)
	}
}
