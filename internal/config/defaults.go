package config

import "time"

// ConfigName is the base name of the project config file (loadbar.yaml).
const ConfigName = "loadbar"

// Log defaults
const (
	DefaultLogLevel = "info"
)

// Terminal defaults
const (
	DefaultTerminalRefresh = 100 * time.Millisecond
)
