package uniform

import (
	"fmt"
	"strings"

	"github.com/magiconair/properties"
)

// ParseAttrArgs validates the argument string of the annotation. The
// accepted shape is properties-style key=value pairs; no keys are
// recognized yet, so only an empty argument list passes. Unknown keys are
// rejected up front instead of being silently discarded.
func ParseAttrArgs(args string) error {
	if strings.TrimSpace(args) == "" {
		return nil
	}
	props, err := properties.LoadString(args)
	if err != nil {
		return fmt.Errorf("malformed attribute arguments: %w", err)
	}
	if keys := props.Keys(); len(keys) > 0 {
		return fmt.Errorf("unknown attribute argument: %s", keys[0])
	}
	return nil
}
