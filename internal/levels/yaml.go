package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the YAML structure for a single level file.
type yamlLevel struct {
	ID   int      `yaml:"id"`
	Name string   `yaml:"name,omitempty"`
	Cars []string `yaml:"cars"`
}

// ParseYAMLLevel parses one YAML level file. The cars list holds the same
// descriptor strings as the text catalog.
func ParseYAMLLevel(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if yl.ID < 1 {
		return Level{}, fmt.Errorf("levels: yaml level: id %d out of range", yl.ID)
	}

	level := Level{Number: yl.ID, Name: yl.Name}
	for _, d := range yl.Cars {
		spec, err := ParseDescriptor(d)
		if err != nil {
			return Level{}, fmt.Errorf("levels: yaml level %d: %w", yl.ID, err)
		}
		level.Cars = append(level.Cars, spec)
	}

	if err := level.Validate(); err != nil {
		return Level{}, fmt.Errorf("levels: yaml level: %w", err)
	}
	return level, nil
}

// MarshalYAMLLevel renders a level as a YAML document, the inverse of
// ParseYAMLLevel.
func MarshalYAMLLevel(level Level) ([]byte, error) {
	yl := yamlLevel{
		ID:   level.Number,
		Name: level.Name,
		Cars: level.Descriptors(),
	}
	return yaml.Marshal(yl)
}
