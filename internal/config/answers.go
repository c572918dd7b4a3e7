package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Answers holds wizard answers supplied from a YAML file for
// non-interactive runs. Zero values fall back to flag values or defaults.
type Answers struct {
	Name          string `yaml:"name"`
	Package       string `yaml:"package"`
	Structure     string `yaml:"structure"`
	PythonVersion string `yaml:"python_version"`
	Author        string `yaml:"author"`
	Email         string `yaml:"email"`
	Description   string `yaml:"description"`
}

// LoadAnswers reads an answers file. A missing file is an error; the caller
// asked for it explicitly.
func LoadAnswers(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}

	var a Answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse answers file %s: %w", path, err)
	}
	return &a, nil
}
