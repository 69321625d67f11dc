package config

import "time"

type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080" validate:"required"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s" validate:"gt=0"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081" validate:"required"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090" validate:"required"`
}

type Log struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info" validate:"required"`
	Format      string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	FieldMaxLen int    `env:"LOG_FIELD_MAX_LEN" envDefault:"4096" validate:"gte=0"`
}
