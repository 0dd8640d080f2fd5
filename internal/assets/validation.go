package assets

import (
	"fmt"
	"path"
	"strings"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateIconName checks that an icon name is safe for use as a filename.
// Icon files are often named after versions or brands ("my.logo"), so
// interior dots are allowed; separators, a leading dot and NUL are not.
func ValidateIconName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.HasPrefix(name, ".") || strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// IconName reduces an icon reference to a bare icon name.
// References are paths relative to some icons directory, so only the base
// name matters: "static/icons/email.svg", "templates/static/icons/email.svg",
// "email.svg" and "email" all resolve to "email", and "my.logo.svg" to "my.logo".
func IconName(ref string) (string, error) {
	ref = strings.TrimSpace(strings.ReplaceAll(ref, `\`, "/"))
	name := path.Base(ref)
	if ext := path.Ext(name); strings.EqualFold(ext, ".svg") {
		name = name[:len(name)-len(ext)]
	}
	if name == "/" {
		name = ""
	}
	if err := ValidateIconName(name); err != nil {
		return "", err
	}
	return name, nil
}

// IsInlineSVG reports whether the reference already holds SVG markup.
func IsInlineSVG(ref string) bool {
	return strings.HasPrefix(strings.TrimSpace(ref), "<svg")
}
