package logger

import (
	"github.com/sirupsen/logrus"
)

// Log — глобальный структурированный логгер приложения.
var Log *logrus.Logger

// Init настраивает глобальный логгер. В development логи пишутся в текстовом
// формате, в остальных окружениях — в JSON для агрегаторов.
func Init(level, env string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if env == "development" {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		return
	}
	Log.SetFormatter(&logrus.JSONFormatter{})
}
