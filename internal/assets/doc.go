// Package assets provides the CV template, its stylesheet and SVG icons.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - go:embed defaults compiled into the binary
//	    ├── FilesystemLoader  - custom directory on disk, or a flat icons dir
//	    └── Resolver          - icons dir → custom dir → embedded
//
// The Resolver is what the renderer uses. Each layer only answers for
// assets it actually has; a "not found" falls through to the next layer,
// any other error stops the lookup.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/cv.css
//	├── templates/cv.html
//	└── icons/{name}.svg
//
// The icons directory (conventionally static/icons) is flat:
//
//	static/icons/
//	├── email.svg
//	└── github.svg
//
// # Icon References
//
// Contact entries reference icons by relative path. IconName keeps only the
// base name without the .svg extension, so "static/icons/email.svg" and
// "templates/static/icons/email.svg" both load the "email" icon.
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within its base directory.
package assets
