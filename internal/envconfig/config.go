// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package envconfig reads settings for the mason command from the
// environment.
package envconfig

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	// Set via MASON_DEBUG in the environment
	Debug bool
	// Set via MASON_MAX_DEPTH in the environment
	MaxDepth int
	// Set via MASON_INDENT in the environment
	Indent string
)

// An EnvVar describes a single environment setting.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns the current settings keyed by variable name.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"MASON_DEBUG":     {"MASON_DEBUG", Debug, "Show additional debug information (e.g. MASON_DEBUG=1)"},
		"MASON_MAX_DEPTH": {"MASON_MAX_DEPTH", MaxDepth, "Maximum nesting depth of arrays and objects (default 1000, -1 for no limit)"},
		"MASON_INDENT":    {"MASON_INDENT", Indent, "Number of spaces to indent JSON output (default 4)"},
	}
}

// Usage renders a description of the environment settings for help text.
func Usage() string {
	vars := AsMap()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Environment Variables:\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "  %-18s %s\n", name, vars[name].Description)
	}
	return sb.String()
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

// LoadConfig populates the settings from the environment. Invalid settings
// are reported to logger and ignored.
func LoadConfig(logger log.Logger) {
	Debug, MaxDepth, Indent = false, 0, ""

	if debug := clean("MASON_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	if md := clean("MASON_MAX_DEPTH"); md != "" {
		val, err := strconv.Atoi(md)
		if err != nil {
			level.Warn(logger).Log("msg", "invalid setting, ignoring", "MASON_MAX_DEPTH", md, "err", err)
		} else {
			MaxDepth = val
		}
	}

	if in := clean("MASON_INDENT"); in != "" {
		n, err := strconv.Atoi(in)
		if err != nil || n <= 0 {
			level.Warn(logger).Log("msg", "invalid setting must be greater than zero", "MASON_INDENT", in, "err", err)
		} else {
			Indent = strings.Repeat(" ", n)
		}
	}
}
