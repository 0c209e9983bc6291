package config

import "errors"

var (
	// ErrConfigLoad is returned when the config file or environment cannot be read
	ErrConfigLoad = errors.New("config: cannot read configuration source")
	// ErrConfigUnmarshal is returned when loaded values do not fit the Config struct
	ErrConfigUnmarshal = errors.New("config: cannot decode configuration")
)
