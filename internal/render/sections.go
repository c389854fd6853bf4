package render

import (
	"strings"

	"resume-studio/internal/model"
)

func (w *builder) header() {
	h := w.opts.Sections.Header
	headerStyle := "background-color:" + h.BackgroundColor +
		";color:" + h.TextColor +
		";padding:" + h.Padding +
		";border-bottom:" + h.BorderBottom + ";"

	w.b.WriteString(`<header class="resume-header ` + w.res.HeaderClass + `" style="` + esc(headerStyle) + `">`)

	pi := w.data.PersonalInfo
	if pi.PhotoURL != "" && w.opts.ShowPhoto {
		w.b.WriteString(`<img class="profile-photo" src="` + esc(pi.PhotoURL) + `" alt="` + esc(labelOr(pi.Name, "Profile")) + `">`)
	}

	w.b.WriteString(`<h1 class="resume-name">`)
	w.b.WriteString(w.field(pi.Name, "Your Name", target(sectionPersonalInfo, "name", false)))
	w.b.WriteString(`</h1>`)

	w.b.WriteString(`<div class="contact-row">`)
	w.contactItem(pi.Email, "", "Email", "mailto", "email")
	w.contactItem(pi.Phone, "", "Phone", "tel", "phone")
	w.contactItem(pi.LinkedIn, "LinkedIn", "LinkedIn", "url", "linkedin")
	w.contactItem(pi.GitHub, "GitHub", "GitHub", "url", "github")
	w.contactItem(pi.Portfolio, linkLabel(pi.Portfolio), "Portfolio", "url", "portfolio")
	w.b.WriteString(`</div></header>`)
}

// contactItem renders one header contact value. Blank values are skipped
// outside edit mode; in edit mode they render as placeholders so the user
// still has a click target.
func (w *builder) contactItem(value, label, placeholder, scheme, fieldName string) {
	if value == "" && !w.editable() {
		return
	}
	w.b.WriteString(`<span class="contact-item">`)
	if w.editable() {
		w.b.WriteString(w.field(labelOr(label, value), placeholder, target(sectionPersonalInfo, fieldName, false)))
	} else {
		w.b.WriteString(w.linkField(value, label, scheme, target(sectionPersonalInfo, fieldName, false)))
	}
	w.b.WriteString(`</span>`)
}

func (w *builder) sectionHeading(title string) {
	sh := w.opts.Sections.SectionHeaders
	headingStyle := "font-size:" + sh.FontSize +
		";color:" + sh.Color +
		";font-weight:" + sh.FontWeight + ";"
	if w.opts.Layout.SectionDividers {
		headingStyle += "border-bottom:" + sh.BorderBottom + ";"
	}
	w.b.WriteString(`<h2 class="` + w.res.SectionHeaderClass + `" style="` + esc(headingStyle) + `">` + esc(title) + `</h2>`)
}

// sectionPlaceholder is the clickable stand-in an empty section shows in
// edit mode. Never emitted in preview or static mode.
func (w *builder) sectionPlaceholder(key model.SectionKey, text string) {
	w.b.WriteString(`<p class="editable placeholder" data-edit="` + editAttr(EditTarget{Section: string(key), Multiline: true}) + `">` + esc(text) + `</p>`)
}

func (w *builder) summarySection() {
	blank := strings.TrimSpace(w.data.Summary) == ""
	if blank && w.omitEmpty() {
		return
	}
	w.b.WriteString(`<section class="resume-section" data-section="summary">`)
	w.sectionHeading("Professional Summary")
	if w.editable() {
		w.b.WriteString(`<p class="summary-text">`)
		w.b.WriteString(w.field(w.data.Summary, "Your professional summary...", target(string(model.SectionSummary), "", true)))
		w.b.WriteString(`</p>`)
	} else {
		w.b.WriteString(`<p class="summary-text">` + esc(w.data.Summary) + `</p>`)
	}
	w.b.WriteString(`</section>`)
}

func (w *builder) experienceSection() {
	if len(w.data.Experience) == 0 && w.omitEmpty() {
		return
	}
	w.b.WriteString(`<section class="resume-section" data-section="experience">`)
	w.sectionHeading("Work Experience")
	if len(w.data.Experience) == 0 {
		w.sectionPlaceholder(model.SectionExperience, "Your work experience...")
	}
	for i, exp := range w.data.Experience {
		sec := string(model.SectionExperience)
		w.b.WriteString(`<div class="entry">`)
		w.b.WriteString(`<h3 class="entry-title">` + w.field(exp.JobTitle, "Job Title", target(sec, "jobTitle", false).at(i)) + `</h3>`)
		w.subtitleLine(
			w.field(exp.Company, "Company", target(sec, "company", false).at(i)),
			w.field(exp.Location, "Location", target(sec, "location", false).at(i)),
			exp.Company, exp.Location,
		)
		w.datesLine(
			w.field(exp.StartDate, "Start Date", target(sec, "startDate", false).at(i)),
			w.field(exp.EndDate, "End Date", target(sec, "endDate", false).at(i)),
			exp.StartDate, exp.EndDate,
		)
		if w.editable() || exp.Description != "" {
			w.b.WriteString(`<p class="entry-description">` + w.field(exp.Description, "Job description...", target(sec, "description", true).at(i)) + `</p>`)
		}
		w.b.WriteString(`</div>`)
	}
	w.b.WriteString(`</section>`)
}

func (w *builder) educationSection() {
	if len(w.data.Education) == 0 && w.omitEmpty() {
		return
	}
	w.b.WriteString(`<section class="resume-section" data-section="education">`)
	w.sectionHeading("Education")
	if len(w.data.Education) == 0 {
		w.sectionPlaceholder(model.SectionEducation, "Your education...")
	}
	for i, edu := range w.data.Education {
		sec := string(model.SectionEducation)
		w.b.WriteString(`<div class="entry">`)
		w.b.WriteString(`<h3 class="entry-title">` + w.field(edu.Degree, "Degree", target(sec, "degree", false).at(i)) + `</h3>`)
		w.subtitleLine(
			w.field(edu.Institution, "Institution", target(sec, "institution", false).at(i)),
			w.field(edu.Location, "Location", target(sec, "location", false).at(i)),
			edu.Institution, edu.Location,
		)
		if w.editable() || edu.GraduationDate != "" {
			w.b.WriteString(`<p class="entry-dates">Graduated: ` + w.field(edu.GraduationDate, "Graduation Date", target(sec, "graduationDate", false).at(i)) + `</p>`)
		}
		if edu.GPA != "" {
			w.b.WriteString(`<p class="entry-dates">GPA: ` + w.field(edu.GPA, "GPA", target(sec, "gpa", false).at(i)) + `</p>`)
		}
		w.b.WriteString(`</div>`)
	}
	w.b.WriteString(`</section>`)
}

func (w *builder) skillsSection() {
	if len(w.data.Skills) == 0 && w.omitEmpty() {
		return
	}
	w.b.WriteString(`<section class="resume-section" data-section="skills">`)
	w.sectionHeading("Skills")
	if len(w.data.Skills) == 0 {
		w.sectionPlaceholder(model.SectionSkills, "Your skills...")
	} else {
		listStyle, prefix := bulletStyle(w.res.Tokens.BulletStyle)
		w.b.WriteString(`<ul class="skills-grid" style="list-style-type:` + esc(listStyle) + `">`)
		for i, skill := range w.data.Skills {
			w.b.WriteString(`<li>` + esc(prefix) +
				w.field(skill.Name, "Skill Name", target(string(model.SectionSkills), "name", false).at(i)) +
				` <span class="skill-level">(` + esc(string(skill.Proficiency)) + `)</span></li>`)
		}
		w.b.WriteString(`</ul>`)
	}
	w.b.WriteString(`</section>`)
}

func (w *builder) projectsSection() {
	if len(w.data.Projects) == 0 && w.omitEmpty() {
		return
	}
	w.b.WriteString(`<section class="resume-section" data-section="projects">`)
	w.sectionHeading("Projects")
	if len(w.data.Projects) == 0 {
		w.sectionPlaceholder(model.SectionProjects, "Your projects...")
	}
	for i, proj := range w.data.Projects {
		sec := string(model.SectionProjects)
		w.b.WriteString(`<div class="entry">`)
		w.b.WriteString(`<h3 class="entry-title">` + w.field(proj.Name, "Project Name", target(sec, "name", false).at(i)) + `</h3>`)
		if w.editable() || proj.Link != "" {
			w.b.WriteString(`<p class="entry-link">` + w.linkField(proj.Link, proj.Link, "url", target(sec, "link", false).at(i)) + `</p>`)
		}
		if w.editable() || proj.Technologies != "" {
			w.b.WriteString(`<p class="entry-tech">Technologies: ` + w.field(proj.Technologies, "Technologies used", target(sec, "technologies", false).at(i)) + `</p>`)
		}
		if w.editable() || proj.Description != "" {
			w.b.WriteString(`<p class="entry-description">` + w.field(proj.Description, "Project description...", target(sec, "description", true).at(i)) + `</p>`)
		}
		w.b.WriteString(`</div>`)
	}
	w.b.WriteString(`</section>`)
}

// subtitleLine joins "left | right" but only keeps the separator when both
// sides have content outside edit mode.
func (w *builder) subtitleLine(left, right, leftRaw, rightRaw string) {
	w.b.WriteString(`<p class="entry-subtitle">`)
	switch {
	case w.editable() || (leftRaw != "" && rightRaw != ""):
		w.b.WriteString(left + ` | ` + right)
	case leftRaw != "":
		w.b.WriteString(left)
	case rightRaw != "":
		w.b.WriteString(right)
	}
	w.b.WriteString(`</p>`)
}

func (w *builder) datesLine(start, end, startRaw, endRaw string) {
	if !w.editable() && startRaw == "" && endRaw == "" {
		return
	}
	w.b.WriteString(`<p class="entry-dates">` + start + ` - ` + end + `</p>`)
}

// bulletStyle splits the configured bullet into a CSS list-style-type or,
// for literal glyphs like "▪", a text prefix on list-style:none.
func bulletStyle(configured string) (listStyle, prefix string) {
	switch configured {
	case "disc", "circle", "square", "none", "decimal":
		return configured, ""
	case "":
		return "disc", ""
	default:
		return "none", configured + " "
	}
}
