package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("BILLUI_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("BILLUI_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("BILLUI_LISTEN")
}

func GetPort() string {
	port := os.Getenv("BILLUI_PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("BILLUI_DB_FOLDER")
	if dbFolderPath == "" {
		if IsDebug() {
			dbFolderPath = "db"
		} else {
			dbFolderPath = "/etc/bill-ui"
		}
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("BILLUI_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetSessionSecret returns the cookie-session signing secret. Empty means the
// server generates a random one at startup.
func GetSessionSecret() string {
	return os.Getenv("BILLUI_SESSION_SECRET")
}

// GetTokenSecret returns the secret used to sign API bearer tokens. Empty
// means the server generates a random one at startup.
func GetTokenSecret() string {
	return os.Getenv("BILLUI_TOKEN_SECRET")
}

// GetAdminPassword returns the password the default admin account is seeded
// with. The hard-coded fallback exists for local development only.
func GetAdminPassword() string {
	password := os.Getenv("BILLUI_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	return password
}

// GetUserPassword returns the password the default regular account is seeded with.
func GetUserPassword() string {
	password := os.Getenv("BILLUI_USER_PASSWORD")
	if password == "" {
		password = "user123"
	}
	return password
}
