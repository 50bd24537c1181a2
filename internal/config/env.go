package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Version is stamped at build time with -ldflags "-X movies-admin/internal/config.Version=...".
var Version = "dev"

// Env returns GO_ENV, defaulting to dev.
func Env() string {
	if env := os.Getenv("GO_ENV"); env != "" {
		return env
	}
	return "dev"
}

// LoadEnvFiles reads envs/.env.<GO_ENV> from the working directory, falling back
// to envs/.env. Variables already set in the process win over file values.
func LoadEnvFiles() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	dir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	for _, name := range []string{".env." + Env(), ".env"} {
		file := filepath.Join(dir, "envs", name)
		if err := godotenv.Load(file); err != nil {
			log.Debugf("Could not load environment file %s: %v", file, err)
			continue
		}
		log.Infof("Environment loaded from file %s", file)
		return
	}
	log.Warn("No environment file found, using process environment only")
}

// NewLogger builds the JSON logger shared by the server and the CLI.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	switch Env() {
	case "dev", "development":
		log.SetLevel(logrus.DebugLevel)
	}

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	return log
}
