// Package config loads the YAML suites run by arcprof.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/colorfulnotion/arcutil/arcerrors"
	"github.com/colorfulnotion/arcutil/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRuns     = 5
	DefaultLogLevel = "info"
)

// Command is one named command line timed by a suite.
type Command struct {
	Name string   `yaml:"name"`
	Args []string `yaml:"cmd"`
	Dir  string   `yaml:"dir,omitempty"`
}

// Prealloc sizes the profiler before the first run.
type Prealloc struct {
	Names  int `yaml:"names"`
	Events int `yaml:"events"`
}

type Suite struct {
	Runs     int       `yaml:"runs"`
	Warmup   int       `yaml:"warmup"`
	LogFile  string    `yaml:"log_file,omitempty"`
	LogLevel string    `yaml:"log_level"`
	Chart    string    `yaml:"chart,omitempty"`
	Tree     bool      `yaml:"tree"`
	Prealloc Prealloc  `yaml:"prealloc"`
	Commands []Command `yaml:"commands"`
}

// Load reads, defaults and validates the suite at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", arcerrors.ErrConfigRead, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug(log.ConfigMonitoring, "suite loaded", "path", path, "commands", len(s.Commands), "runs", s.Runs)
	return s, nil
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", arcerrors.ErrConfigParse, err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) applyDefaults() {
	if s.Runs == 0 {
		s.Runs = DefaultRuns
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	if s.Prealloc.Names == 0 {
		s.Prealloc.Names = len(s.Commands)
	}
	if s.Prealloc.Events == 0 {
		s.Prealloc.Events = s.Runs
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", arcerrors.ErrConfigInvalid, fmt.Sprintf(format, args...))
}

// Validate checks run counts, the log level and that every command has a
// unique, non-empty name and at least one argument.
func (s *Suite) Validate() error {
	if s.Runs < 1 {
		return invalid("runs must be positive, got %d", s.Runs)
	}
	if s.Warmup < 0 {
		return invalid("warmup cannot be negative, got %d", s.Warmup)
	}
	if s.Prealloc.Names < 0 || s.Prealloc.Events < 0 {
		return invalid("prealloc sizes cannot be negative")
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return invalid("log_level: %v", err)
	}
	if len(s.Commands) == 0 {
		return invalid("commands is required")
	}
	seen := make(map[string]bool, len(s.Commands))
	for i, c := range s.Commands {
		if strings.TrimSpace(c.Name) == "" {
			return invalid("commands[%d]: name cannot be empty", i)
		}
		if seen[c.Name] {
			return invalid("commands[%d]: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true
		if len(c.Args) == 0 {
			return invalid("commands[%d] %q: cmd is required", i, c.Name)
		}
	}
	return nil
}

// Names returns the command names in suite order.
func (s *Suite) Names() []string {
	names := make([]string, len(s.Commands))
	for i, c := range s.Commands {
		names[i] = c.Name
	}
	return names
}
