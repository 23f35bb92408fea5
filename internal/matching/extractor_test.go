package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ExtractSkills_FindsVocabularyTerms(t *testing.T) {

	skills := ExtractSkills("Looking for Python and Django developer with Docker experience")

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "django")
	assert.Contains(t, skills, "docker")
}

func Test_ExtractSkills_NormalizesPunctuationAndCase(t *testing.T) {

	skills := ExtractSkills("Required: PYTHON, Django!")

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "django")
}

func Test_ExtractSkills_PicksUpTechnicalSuffixTokens(t *testing.T) {

	skills := ExtractSkills("We use vuejs and nosql stores")

	assert.Contains(t, skills, "vuejs")
	assert.Contains(t, skills, "nosql")
	// "sql" also hits as a substring of "nosql". Permissive on purpose.
	assert.Contains(t, skills, "sql")
}

func Test_ExtractSkills_SubstringMatchingIsPermissive(t *testing.T) {

	// "javascript" contains "java"; both are reported.
	skills := ExtractSkills("Senior JavaScript engineer")

	assert.Contains(t, skills, "javascript")
	assert.Contains(t, skills, "java")
}

func Test_ExtractSkills_Deduplicates(t *testing.T) {

	skills := ExtractSkills("python python PYTHON")

	count := 0
	for _, skill := range skills {
		if skill == "python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func Test_ExtractSkills_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
	assert.Empty(t, ExtractSkills("   "))
}
