package model

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Metadata holds the optional front matter fields of a note.
type Metadata struct {
	Title       string `yaml:"title" json:"title,omitempty"`
	Date        string `yaml:"date" json:"date,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
	Lang        string `yaml:"lang" json:"lang,omitempty"`
	Tags        Tags   `yaml:"tags" json:"tags,omitempty"`
}

// IsZero reports whether no field was set.
func (m Metadata) IsZero() bool {
	return m.Title == "" && m.Date == "" && m.Description == "" && m.Lang == "" && len(m.Tags) == 0
}

// Tags accepts either a YAML sequence or a comma separated scalar.
type Tags []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tags) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*t = splitTags(node.Value)
		return nil
	case yaml.SequenceNode:
		var raw []string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		tags := make(Tags, 0, len(raw))
		for _, tag := range raw {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		*t = tags
		return nil
	default:
		*t = nil
		return nil
	}
}

func splitTags(value string) Tags {
	parts := strings.Split(value, ",")
	tags := make(Tags, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
