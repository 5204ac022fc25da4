package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName accepts bare names such as "rewired". Separators, dots
// and NUL are refused so a name can only pick a file inside styles/ or
// templates/.
func ValidateAssetName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case strings.ContainsAny(name, "/\\.\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
