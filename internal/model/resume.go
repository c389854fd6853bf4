package model

import "github.com/google/uuid"

// Resume content values. These mirror the JSON shape the builder UI sends;
// empty string means "unset", renderers decide whether to show a placeholder.

type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
	PhotoURL  string `json:"photoUrl"`
}

type ExperienceEntry struct {
	ID          string `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type EducationEntry struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
}

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyExpert       Proficiency = "Expert"
)

type SkillEntry struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

type ProjectEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
}

type ResumeData struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []SkillEntry      `json:"skills"`
	Projects     []ProjectEntry    `json:"projects"`
}

// NewEntryID returns an opaque identifier for a new entry. IDs are assigned
// once at creation and never recomputed; slice order is the display order.
func NewEntryID() string {
	return uuid.NewString()
}

// SampleResume is the data set used for template gallery previews and the
// render-sample tool.
func SampleResume() ResumeData {
	return ResumeData{
		PersonalInfo: PersonalInfo{
			Name:      "John Doe",
			Email:     "john.doe@email.com",
			Phone:     "(555) 123-4567",
			LinkedIn:  "linkedin.com/in/johndoe",
			GitHub:    "github.com/johndoe",
			Portfolio: "johndoe.dev",
		},
		Summary: "Experienced software engineer with 5+ years developing scalable web applications. Passionate about clean code and modern technologies.",
		Experience: []ExperienceEntry{
			{
				ID:          "1",
				JobTitle:    "Senior Software Engineer",
				Company:     "Tech Corp",
				Location:    "San Francisco, CA",
				StartDate:   "2022",
				EndDate:     "Present",
				Description: "Lead development of microservices architecture serving 1M+ users",
			},
			{
				ID:          "2",
				JobTitle:    "Software Engineer",
				Company:     "StartupXYZ",
				Location:    "New York, NY",
				StartDate:   "2020",
				EndDate:     "2022",
				Description: "Built full-stack applications using React and Node.js",
			},
		},
		Education: []EducationEntry{
			{
				ID:             "1",
				Degree:         "Bachelor of Science in Computer Science",
				Institution:    "University of Technology",
				Location:       "California",
				GraduationDate: "2020",
				GPA:            "3.8",
			},
		},
		Skills: []SkillEntry{
			{ID: "1", Name: "JavaScript", Proficiency: ProficiencyExpert},
			{ID: "2", Name: "React", Proficiency: ProficiencyExpert},
			{ID: "3", Name: "Node.js", Proficiency: ProficiencyAdvanced},
			{ID: "4", Name: "Python", Proficiency: ProficiencyAdvanced},
		},
		Projects: []ProjectEntry{
			{
				ID:           "1",
				Name:         "E-commerce Platform",
				Description:  "Full-stack e-commerce solution with payment integration",
				Technologies: "React, Node.js, MongoDB",
				Link:         "github.com/johndoe/ecommerce",
			},
		},
	}
}
