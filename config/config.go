// Package config loads ashe's properties-file configuration. It mirrors
// the teacher's "configure once, read many" singleton idiom: the first
// successful Load wins for the lifetime of the process, and a later Load
// with a different path is silently ignored.
package config

import (
	"sync"

	"github.com/magiconair/properties"

	"github.com/dhamidi/ashe/errs"
)

// Config is the read-only view of a loaded properties file. Every field
// has a documented default, applied in Load when the key is absent.
type Config struct {
	LlmEndpoint         string
	LlmAPIKey           string
	LlmRoleSystem       string
	LlmRoleUser         string
	LlmSystemMessage    string
	LlmPromptPrefix     string
	LlmPromptSuffix     string
	LlmTimeoutTotal     int // seconds
	LlmTimeoutLog       int // seconds
	LlmFixturePath      string

	SlicerToolPath string

	CheckerToolName  string
	CheckerJarPath   string
	CheckerClasspath string
	CheckerProcessor string

	DriverMaxIterations int
}

var (
	mu       sync.Mutex
	instance *Config
)

// Load reads path and installs it as the process-wide singleton if one
// does not already exist. If a singleton is already installed, Load
// returns it unchanged and the new path is ignored — this preserves the
// first-initializer-wins behavior documented as an intentional choice.
func Load(path string) (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, errs.Wrap(errs.IoError, err, "loading configuration file "+path)
	}

	cfg := &Config{
		LlmEndpoint:      p.GetString("llm.endpoint", ""),
		LlmAPIKey:        p.GetString("llm.api_key", ""),
		LlmRoleSystem:    p.GetString("llm.role.system", "system"),
		LlmRoleUser:      p.GetString("llm.role.user", "user"),
		LlmSystemMessage: p.GetString("llm.system_message", "You are a helpful assistant that fixes type errors."),
		LlmPromptPrefix:  p.GetString("llm.prompt.prefix", ""),
		LlmPromptSuffix:  p.GetString("llm.prompt.suffix", ""),
		LlmTimeoutTotal:  p.GetInt("llm.timeout_total_seconds", 60),
		LlmTimeoutLog:    p.GetInt("llm.timeout_log_seconds", 10),
		LlmFixturePath:   p.GetString("llm.fixture_path", ""),

		SlicerToolPath: p.GetString("slicer.tool_path", ""),

		CheckerToolName:  p.GetString("checker.tool_name", "javac"),
		CheckerJarPath:   p.GetString("checker.jar_path", ""),
		CheckerClasspath: p.GetString("checker.classpath", ""),
		CheckerProcessor: p.GetString("checker.processor", ""),

		DriverMaxIterations: p.GetInt("driver.max_iterations", 25),
	}

	instance = cfg
	return instance, nil
}

// Global returns the process-wide configuration installed by Load. It
// panics if called before any Load has succeeded — callers that can
// reach a *Config through their constructor should prefer that instead.
func Global() *Config {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		panic("config: Global called before Load")
	}
	return instance
}

// reset clears the singleton. Test-only; not exported.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}

// RequireSlicerToolPath returns an error naming the missing key if unset.
func (c *Config) RequireSlicerToolPath() (string, error) {
	if c.SlicerToolPath == "" {
		return "", errs.New(errs.FormatError, "missing required configuration key: slicer.tool_path").
			WithFix("set slicer.tool_path in the properties file")
	}
	return c.SlicerToolPath, nil
}

// RequireLlmEndpoint returns an error naming the missing key if unset.
func (c *Config) RequireLlmEndpoint() (string, error) {
	if c.LlmEndpoint == "" {
		return "", errs.New(errs.InvalidModel, "missing required configuration key: llm.endpoint").
			WithFix("set llm.endpoint in the properties file")
	}
	return c.LlmEndpoint, nil
}

// RequireLlmFixturePath returns an error naming the missing key if unset.
func (c *Config) RequireLlmFixturePath() (string, error) {
	if c.LlmFixturePath == "" {
		return "", errs.New(errs.InvalidModel, "missing required configuration key: llm.fixture_path").
			WithFix("set llm.fixture_path in the properties file")
	}
	return c.LlmFixturePath, nil
}
