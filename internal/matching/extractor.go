package matching

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Reference vocabulary of common technology skills. Matching is substring
// based and favors recall over precision.
var commonSkills = []string{
	"python", "java", "javascript", "react", "django", "spring", "nodejs",
	"angular", "vue", "html", "css", "sql", "mysql", "postgresql", "mongodb",
	"aws", "docker", "kubernetes", "git", "linux", "machine learning", "ai",
	"data science", "tensorflow", "pytorch", "pandas", "numpy", "flask",
	"express", "rest api", "graphql", "microservices", "devops", "ci/cd",
	"jenkins", "terraform", "ansible", "redis", "elasticsearch", "kafka",
	"rabbitmq", "celery", "nginx", "apache", "load balancing", "caching",
}

// Suffixes that make a standalone token look like a technology name
// ("fastapi", "nosql", "vuejs"). False positives are accepted.
var techSuffixes = []string{"js", "py", "sql", "++"}

var punctuationRe = regexp.MustCompile(`[^\w\s]`)

// NormalizeText lowercases text and replaces punctuation with spaces.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(punctuationRe.ReplaceAllString(strings.ToLower(text), " "))
}

// ExtractSkills pulls recognized and likely skill tokens out of free text.
// The result is a deduplicated, unordered set.
func ExtractSkills(text string) []string {
	normalized := NormalizeText(text)
	if normalized == "" {
		return []string{}
	}

	var found []string
	for _, skill := range commonSkills {
		if strings.Contains(normalized, skill) {
			found = append(found, skill)
		}
	}

	for _, word := range strings.Fields(normalized) {
		if looksTechnical(word) && !lo.Contains(found, word) {
			found = append(found, word)
		}
	}

	return lo.Uniq(found)
}

func looksTechnical(word string) bool {
	for _, suffix := range techSuffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}
