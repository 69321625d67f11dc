package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP       HTTP
	Probe      Probe
	Metrics    Metrics
	Log        Log
	Quote      Quote
	Recognizer Recognizer
}

type Recognizer struct {
	Name string `env:"PLACE_RECOGNIZER" envDefault:"gazetteer" validate:"oneof=gazetteer prose"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	return parse(env.Options{})
}

// FromMap builds a config from environ only, ignoring the process
// environment.
func FromMap(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var config Config

	if err := env.ParseWithOptions(&config, opts); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	config.Recognizer.Name = strings.ToLower(config.Recognizer.Name)
	config.Log.Format = strings.ToLower(config.Log.Format)

	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("validate: %w", err)
	}

	return config, nil
}
