package render

import (
	"html/template"

	"github.com/alnah/go-cv2pdf/internal/cv"
)

// page is the data passed to the template.
// Empty slices and strings make the template skip the matching section.
type page struct {
	CSS        template.CSS
	Name       string
	Position   string
	HeaderIcon template.HTML
	Summary    template.HTML
	Contacts   []contactView
	Skills     []cv.SkillGroup
	Education  []educationView
	Languages  []cv.Language
	Experience []experienceView
}

type contactView struct {
	Icon template.HTML
	Link template.URL
	Text string
}

type educationView struct {
	Name        string
	Date        string
	Description template.HTML
}

type experienceView struct {
	Company      string
	Project      string
	Date         string
	Position     string
	Description  template.HTML
	Stack        []string
	Achievements []template.HTML
}
