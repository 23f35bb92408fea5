package matching

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"time"

	"github.com/careerhub/jobmatch/internal/entities"
	gocache "github.com/patrickmn/go-cache"
)

// Aggregation weights, summing to 1.0.
const (
	skillsWeight     = 0.40
	experienceWeight = 0.25
	locationWeight   = 0.20
	salaryWeight     = 0.15
)

// MatchResult is the score breakdown for one (profile, job) pair. Every
// value is in [0,100], rounded to one decimal. It is not persisted on its
// own, only as the denormalized columns of an application.
type MatchResult struct {
	Overall    float64 `json:"overall_score"`
	Skills     float64 `json:"skills_score"`
	Experience float64 `json:"experience_score"`
	Location   float64 `json:"location_score"`
	Salary     float64 `json:"salary_score"`
}

// Matcher scores job postings against candidate profiles. It holds no
// mutable scoring state; the only internals are a clock (so experience
// computed from a career start date is pinnable in tests) and a cache of
// extracted job skills, since extraction is deterministic per job text.
type Matcher struct {
	now        func() time.Time
	skillCache *gocache.Cache
}

func NewMatcher() *Matcher {
	return &Matcher{
		now:        time.Now,
		skillCache: gocache.New(10*time.Minute, 20*time.Minute),
	}
}

func (m *Matcher) WithNow(now func() time.Time) *Matcher {
	m.now = now
	return m
}

// Score computes the weighted overall match and its breakdown.
// Missing optional profile data degrades each scorer to its neutral
// default; Score never fails.
func (m *Matcher) Score(profile *entities.Profile, job *entities.Job) MatchResult {
	skills := m.scoreSkills(profile, job)
	experience := m.scoreExperience(profile, job)
	location := scoreLocation(profile, job)
	salary := scoreSalary(profile, job)

	overall := skills*skillsWeight +
		experience*experienceWeight +
		location*locationWeight +
		salary*salaryWeight

	return MatchResult{
		Overall:    round1(overall),
		Skills:     round1(skills),
		Experience: round1(experience),
		Location:   round1(location),
		Salary:     round1(salary),
	}
}

func (m *Matcher) jobSkills(job *entities.Job) []string {
	text := job.FullText()
	key := skillCacheKey(text)

	if cached, found := m.skillCache.Get(key); found {
		return cached.([]string)
	}

	skills := ExtractSkills(text)
	_ = m.skillCache.Add(key, skills, gocache.DefaultExpiration)
	return skills
}

func skillCacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
