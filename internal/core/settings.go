package core

import (
	"fmt"
	"strings"
)

// Settings collects repeated key=value flags into a sim configuration map.
type Settings map[string]string

// String implements flag.Value.
func (s Settings) String() string {
	parts := make([]string, 0, len(s))
	for k, v := range s {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (s *Settings) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	if *s == nil {
		*s = Settings{}
	}
	(*s)[key] = strings.TrimSpace(value)
	return nil
}
