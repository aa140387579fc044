package markdown

import (
	"gopkg.in/yaml.v3"
)

// FrontMatter represents the Front Matter
type FrontMatter string

func (f FrontMatter) AsMap() (map[string]any, error) {
	var attributes = make(map[string]any)
	if err := yaml.Unmarshal([]byte(f), attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}

// Decode unmarshals the attributes into the given struct.
func (f FrontMatter) Decode(v any) error {
	return yaml.Unmarshal([]byte(f), v)
}
