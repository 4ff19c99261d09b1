package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Frebklin/haystack/logger"
)

// Settings contains the engine configuration a host process loads once
// and hands to pipeline constructors.
type Settings struct {
	// Name names the pipeline in logs and error details.
	Name string `yaml:"name" mapstructure:"name" validate:"required"`
	// MaxLoopsAllowed bounds re-executions of loop-group components
	// within one run.
	MaxLoopsAllowed int `yaml:"max_loops_allowed" mapstructure:"max_loops_allowed" validate:"min=1"`
	// Logging configures the engine logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the settings.
func (s *Settings) ApplyDefaults() {
	if s.Name == "" {
		s.Name = "pipeline"
	}
	if s.MaxLoopsAllowed == 0 {
		s.MaxLoopsAllowed = 10
	}
	s.Logging.ApplyDefaults()
}

// Validate validates the settings.
func (s *Settings) Validate() error {
	if err := getValidator().Struct(s); err != nil {
		return fmt.Errorf("config: invalid settings: %w", err)
	}
	return s.Logging.Validate()
}

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
