package assets

// Asset names used by the renderer.
const (
	DefaultTemplateName = "cv"
	DefaultStyleName    = "cv"
	HeaderIconName      = "cv"
)

// Loader defines the contract for loading the CV template, its stylesheet
// and the SVG icons referenced by contacts.
type Loader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadIcon loads raw SVG markup by icon name (without .svg extension).
	// Returns ErrIconNotFound if the icon doesn't exist.
	LoadIcon(name string) (string, error)
}
