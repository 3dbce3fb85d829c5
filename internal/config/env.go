package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds CLI defaults read from the process environment (and .env files).
type Env struct {
	Fighters  int
	Seed      int64
	RulesPath string
	LogFile   string
	LogLevel  string
	LogJSON   bool
	// LoadErr is set when a .env file could not be read; callers treat it as a warning.
	LoadErr error
}

func LoadEnv(files ...string) Env {
	err := godotenv.Load(files...)
	if err != nil && len(files) == 0 && os.IsNotExist(err) {
		err = nil
	}
	e := Env{
		Fighters:  envInt("ARENA_FIGHTERS", 0),
		Seed:      int64(envInt("ARENA_SEED", 0)),
		RulesPath: os.Getenv("ARENA_CONFIG"),
		LogFile:   os.Getenv("ARENA_LOG_FILE"),
		LogLevel:  os.Getenv("ARENA_LOG_LEVEL"),
		LogJSON:   envBool("ARENA_LOG_JSON"),
		LoadErr:   err,
	}
	if e.LogLevel == "" {
		e.LogLevel = "info"
	}
	return e
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return b
}
