package render

// baseCSS is the shared stylesheet. It consumes the resolver's
// custom-property aliases; the structural classes here line up with the
// class names style.Resolve emits.
const baseCSS = `
.resume {
  box-sizing: border-box;
  background-color: var(--background-color);
  color: var(--text-color);
}
.resume-body { display: block; }
.resume-body > .resume-section { margin-bottom: var(--section-spacing); }
.layout-two-column .resume-body {
  display: grid;
  grid-template-columns: 1fr 2fr;
  column-gap: var(--section-spacing);
}
.layout-sidebar .resume-body {
  display: grid;
  grid-template-columns: 1fr 3fr;
  column-gap: var(--section-spacing);
}
.layout-modern { border-left: 4px solid var(--accent-color); }
.layout-creative {
  background-image: linear-gradient(to bottom, #f9fafb, var(--background-color));
}
.with-shadow { box-shadow: 0 4px 12px rgba(0, 0, 0, 0.15); }
.rounded { border-radius: var(--border-radius); }

.resume-header { margin-bottom: var(--section-spacing); }
.header-left { text-align: left; }
.header-center { text-align: center; }
.header-right { text-align: right; }
.header-center .profile-photo { margin-left: auto; margin-right: auto; }
.profile-photo {
  display: block;
  width: 96px;
  height: 96px;
  border-radius: 50%;
  object-fit: cover;
  border: 2px solid var(--primary-color);
  margin-bottom: var(--item-spacing);
}
.resume-name {
  margin: 0 0 var(--item-spacing);
  font-size: 2em;
  color: var(--primary-color);
}
.contact-row {
  display: flex;
  flex-wrap: wrap;
  gap: 4px 16px;
  font-size: 0.9em;
  color: var(--secondary-color);
}
.header-center .contact-row { justify-content: center; }
.header-right .contact-row { justify-content: flex-end; }
.contact-link {
  color: var(--link-color);
  text-decoration: var(--link-decoration);
}

.section-heading { margin: 0 0 var(--item-spacing); }
.transform-uppercase { text-transform: uppercase; }
.transform-capitalize { text-transform: capitalize; }
.with-divider { padding-bottom: 4px; }

.entry { margin-bottom: var(--item-spacing); }
.entry-title { margin: 0; font-size: 1.1em; color: var(--primary-color); }
.entry-subtitle { margin: 2px 0; color: var(--secondary-color); }
.entry-dates { margin: 2px 0; font-size: 0.9em; color: var(--muted-color); }
.entry-tech { margin: 2px 0; font-style: italic; color: var(--secondary-color); }
.entry-link { margin: 2px 0; font-size: 0.9em; }
.entry-description, .summary-text {
  margin: var(--paragraph-spacing) 0 0;
  white-space: pre-wrap;
}
.skills-grid {
  margin: 0;
  padding-left: 1.2em;
  display: grid;
  grid-template-columns: 1fr 1fr;
  gap: 4px;
}
.skill-level { font-size: 0.85em; color: var(--muted-color); }

.editable { cursor: pointer; border-radius: 2px; }
.editable:hover { background-color: rgba(0, 0, 0, 0.05); }
.placeholder { font-style: italic; color: var(--muted-color); }
`
