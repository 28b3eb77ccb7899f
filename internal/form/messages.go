package form

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var messagesYAML []byte

const defaultKey = "default"

// Messages thông báo lỗi theo field → rule
type Messages map[string]map[string]string

// LoadMessages load thông báo lỗi từ YAML embed
func LoadMessages() (Messages, error) {
	return ParseMessages(messagesYAML)
}

// ParseMessages parse thông báo lỗi từ YAML
func ParseMessages(data []byte) (Messages, error) {
	var m Messages
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("lỗi parse messages: %w", err)
	}
	if m == nil {
		m = Messages{}
	}
	return m, nil
}

// Lookup tìm thông báo cho field + rule, fallback về default của field rồi default chung
func (m Messages) Lookup(field, rule string) string {
	if byRule, ok := m[field]; ok {
		if msg, ok := byRule[rule]; ok {
			return msg
		}
		if msg, ok := byRule[defaultKey]; ok {
			return msg
		}
	}
	if msg, ok := m[defaultKey][defaultKey]; ok {
		return msg
	}
	return "invalid " + field
}
