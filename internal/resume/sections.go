package resume

import "strings"

// Section is a resume part the segmenter tracks.
type Section string

const (
	SectionNone       Section = ""
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
	SectionSkills     Section = "skills"
)

// Sections holds the content lines collected per section.
type Sections struct {
	Education  []string
	Experience []string
}

func (s *Sections) add(section Section, lines []string) {
	switch section {
	case SectionEducation:
		s.Education = append(s.Education, lines...)
	case SectionExperience:
		s.Experience = append(s.Experience, lines...)
	}
}

// header reports which section a line opens. Education wins over experience,
// experience over skills, when a line contains keywords of several sections.
func (e *Extractor) header(line string) (Section, bool) {
	lower := strings.ToLower(line)
	switch {
	case containsAny(lower, e.vocab.EducationHeaders):
		return SectionEducation, true
	case containsAny(lower, e.vocab.ExperienceHeaders):
		return SectionExperience, true
	case containsAny(lower, e.vocab.SkillsHeaders):
		return SectionSkills, true
	}
	return SectionNone, false
}

func (e *Extractor) segment(lines []string) Sections {
	var (
		out     Sections
		current = SectionNone
		buffer  []string
	)

	flush := func() {
		if len(buffer) > 0 {
			out.add(current, buffer)
		}
		buffer = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if section, ok := e.header(line); ok {
			flush()
			current = section
			continue
		}

		if line != "" && (current == SectionEducation || current == SectionExperience) {
			buffer = append(buffer, line)
		}
	}
	flush()

	return out
}
