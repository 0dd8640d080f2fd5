package assets

import "errors"

// Resolver chains loaders: icons directories first (icons only, in the
// order given), then a custom asset directory, then the embedded defaults.
// Only "not found" errors fall through to the next loader.
type Resolver struct {
	icons    []Loader
	custom   Loader // nil when no custom base path is configured
	embedded Loader
}

// NewResolver creates a Resolver. Empty paths disable the matching layer.
// Returns ErrInvalidBasePath if a non-empty path is not a readable directory.
func NewResolver(basePath string, iconsDirs ...string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if basePath != "" {
		fsLoader, err := NewFilesystemLoader(basePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	for _, dir := range iconsDirs {
		if dir == "" {
			continue
		}
		iconLoader, err := NewIconDirLoader(dir)
		if err != nil {
			return nil, err
		}
		r.icons = append(r.icons, iconLoader)
	}

	return r, nil
}

// LoadStyle loads a CSS style, custom directory first.
func (r *Resolver) LoadStyle(name string) (string, error) {
	return firstFound(func(l Loader) (string, error) { return l.LoadStyle(name) }, r.custom, r.embedded)
}

// LoadTemplate loads an HTML template, custom directory first.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	return firstFound(func(l Loader) (string, error) { return l.LoadTemplate(name) }, r.custom, r.embedded)
}

// LoadIcon loads an SVG icon: icons directories, custom directory, embedded.
func (r *Resolver) LoadIcon(name string) (string, error) {
	chain := make([]Loader, 0, len(r.icons)+2)
	chain = append(chain, r.icons...)
	chain = append(chain, r.custom, r.embedded)
	return firstFound(func(l Loader) (string, error) { return l.LoadIcon(name) }, chain...)
}

// HasCustomLoader returns true if a custom asset directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// firstFound returns the first successful load. Nil loaders are skipped.
// Validation and I/O errors stop the chain.
func firstFound(load func(Loader) (string, error), loaders ...Loader) (string, error) {
	var lastErr error
	for _, l := range loaders {
		if l == nil {
			continue
		}
		content, err := load(l)
		if err == nil {
			return content, nil
		}
		if !isNotFoundError(err) {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) ||
		errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrIconNotFound)
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
