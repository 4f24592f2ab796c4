package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"braces.dev/errtrace"
	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

const (
	envFormat = "HDRLIST_FORMAT"
	envInput  = "HDRLIST_INPUT"
	envColor  = "HDRLIST_COLOR"
	envLog    = "HDRLIST_LOG"
)

const (
	formatHTTP1 = "http1"
	formatHPACK = "hpack"
	formatQPACK = "qpack"
)

var formats = []string{formatHTTP1, formatHPACK, formatQPACK}

// config holds flag defaults, taken from the environment or an optional .env file.
// Variables set in the environment win over the file.
type config struct {
	Format string
	Input  string
	Color  bool
	Log    string
}

func loadConfig(envFile string) (config, error) {
	fileEnv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, errtrace.Wrap(err)
		}
		if m != nil {
			fileEnv = m
		}
	}

	getenv := func(key, def string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		if v, ok := fileEnv[key]; ok {
			return v
		}
		return def
	}

	cfg := config{
		Format: strings.ToLower(getenv(envFormat, formatHTTP1)),
		Input:  strings.ToLower(getenv(envInput, formatHTTP1)),
		Log:    strings.ToLower(getenv(envLog, "none")),
	}
	switch strings.ToLower(getenv(envColor, "auto")) {
	case "auto":
		cfg.Color = !color.NoColor
	case "always", "true", "1":
		cfg.Color = true
	case "never", "false", "0":
		cfg.Color = false
	default:
		return config{}, errtrace.Wrap(errorutil.Errorf("invalid %s value %q", envColor, getenv(envColor, "")))
	}
	return cfg, nil
}
