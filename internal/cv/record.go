// Package cv defines the CV record and loads it from JSON or YAML files.
package cv

// Record is the in-memory representation of a CV data file.
// Every field is optional; absent fields stay at their zero value.
type Record struct {
	Name                  string       `json:"name" yaml:"name"`
	Position              string       `json:"position" yaml:"position"`
	Summary               string       `json:"summary" yaml:"summary"`
	Contacts              []Contact    `json:"contacts" yaml:"contacts"`
	Skills                []SkillGroup `json:"skills" yaml:"skills"`
	EducationCertificates []Education  `json:"education_certificates" yaml:"education_certificates"`
	Languages             []Language   `json:"languages" yaml:"languages"`
	Experience            []Experience `json:"experience" yaml:"experience"`
}

// Contact is one line of the contact block.
// Icon is a reference to an SVG file, e.g. "static/icons/email.svg".
type Contact struct {
	Icon string `json:"icon" yaml:"icon"`
	Link string `json:"link" yaml:"link"`
	Text string `json:"text" yaml:"text"`
}

// SkillGroup is a named list of skills.
type SkillGroup struct {
	Name   string   `json:"name" yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}

// Education is an education or certificate entry.
type Education struct {
	Name        string `json:"name" yaml:"name"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
}

// Language is a spoken language and the proficiency level.
type Language struct {
	Language string `json:"language" yaml:"language"`
	Level    string `json:"level" yaml:"level"`
}

// Experience is one job or project entry.
type Experience struct {
	Company      string   `json:"company" yaml:"company"`
	Project      string   `json:"project" yaml:"project"`
	Date         string   `json:"date" yaml:"date"`
	Position     string   `json:"position" yaml:"position"`
	Description  string   `json:"description" yaml:"description"`
	Stack        []string `json:"stack" yaml:"stack"`
	Achievements []string `json:"achievements" yaml:"achievements"`
}
