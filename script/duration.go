package script

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration parses either a Go duration string ("250ms", "1.5s") or a bare
// number of seconds.
type Duration time.Duration

// Std converts to the standard library representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var asString string
	if err := value.Decode(&asString); err == nil {
		parsed, err := time.ParseDuration(asString)
		if err != nil {
			return fmt.Errorf("script: bad duration %q: %w", asString, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var seconds float64
	if err := value.Decode(&seconds); err == nil {
		*d = Duration(time.Duration(seconds * float64(time.Second)))
		return nil
	}

	return fmt.Errorf("script: bad duration node %q", value.Value)
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
