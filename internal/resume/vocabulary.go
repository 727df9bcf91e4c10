package resume

import (
	"slices"
	"strings"
)

// Vocabulary is the keyword catalogue used by the Extractor. It is copied at
// construction time; changing a Vocabulary afterwards does not affect an
// existing Extractor.
type Vocabulary struct {
	// Skills are lowercase skill tokens matched against the whole text.
	Skills []string
	// EducationHeaders, ExperienceHeaders and SkillsHeaders are lowercase
	// substrings that mark a line as a section header.
	EducationHeaders  []string
	ExperienceHeaders []string
	SkillsHeaders     []string
	// NameSkipWords exclude a line from name detection.
	NameSkipWords []string
}

var defaultSkills = []string{
	// languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust",
	"swift", "kotlin", "php", "scala", "r", "matlab", "perl", "bash", "sql", "html", "css",
	// frameworks and libraries
	"react", "angular", "vue", "node.js", "express", "django", "flask", "fastapi",
	"spring", "rails", "laravel", "next.js", "gatsby", "svelte", "jquery", "tailwind",
	// databases
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sqlite", "oracle",
	"dynamodb", "cassandra", "neo4j", "firebase",
	// cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform", "ansible",
	"ci/cd", "linux", "git", "github", "gitlab", "bitbucket",
	// data and ml
	"machine learning", "deep learning", "tensorflow", "pytorch", "keras", "scikit-learn",
	"pandas", "numpy", "opencv", "nlp", "computer vision", "data science", "spark", "hadoop",
	// methodology and tooling
	"agile", "scrum", "jira", "figma", "api", "rest", "graphql", "microservices",
}

// DefaultVocabulary returns a fresh copy of the built-in catalogue.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Skills:            slices.Clone(defaultSkills),
		EducationHeaders:  []string{"education", "academic", "qualification", "degree", "university", "college"},
		ExperienceHeaders: []string{"experience", "employment", "work history", "professional", "career"},
		SkillsHeaders:     []string{"skills", "technical skills", "technologies", "proficiencies", "competencies"},
		NameSkipWords:     []string{"resume", "cv", "curriculum", "portfolio", "objective", "summary"},
	}
}

// With returns a copy of v with extra skills added. Skills are lowercased,
// trimmed and deduplicated.
func (v Vocabulary) With(extraSkills ...string) Vocabulary {
	out := v.clone()
	for _, skill := range extraSkills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" || slices.Contains(out.Skills, skill) {
			continue
		}
		out.Skills = append(out.Skills, skill)
	}
	return out
}

func (v Vocabulary) clone() Vocabulary {
	return Vocabulary{
		Skills:            slices.Clone(v.Skills),
		EducationHeaders:  slices.Clone(v.EducationHeaders),
		ExperienceHeaders: slices.Clone(v.ExperienceHeaders),
		SkillsHeaders:     slices.Clone(v.SkillsHeaders),
		NameSkipWords:     slices.Clone(v.NameSkipWords),
	}
}
