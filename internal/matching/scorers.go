package matching

import (
	"math"
	"strings"

	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/samber/lo"
)

// Year ranges per experience level, inclusive on both ends.
var experienceBands = map[entities.ExperienceLevel][2]float64{
	entities.EntryLevel:     {0, 2},
	entities.MidLevel:       {2, 5},
	entities.SeniorLevel:    {5, 10},
	entities.ExecutiveLevel: {10, math.Inf(1)},
}

func (m *Matcher) scoreSkills(profile *entities.Profile, job *entities.Job) float64 {
	candidateSkills := lo.Map(profile.SkillsAsArray(), func(skill string, _ int) string {
		return strings.ToLower(skill)
	})
	jobSkills := m.jobSkills(job)

	// No evidence either way counts as zero match, not neutral.
	if len(candidateSkills) == 0 || len(jobSkills) == 0 {
		return 0
	}

	candidateVec, jobVec := skillVectors(candidateSkills, jobSkills)
	return math.Min(cosineSimilarity(candidateVec, jobVec)*100, 100.0)
}

// skillVectors builds parallel vectors over the union of both skill sets.
// The job side is binary; the candidate side grants 0.7 for a substring
// match in either direction, 1.0 for an exact one.
func skillVectors(candidateSkills, jobSkills []string) ([]float64, []float64) {
	union := lo.Uniq(append(append([]string{}, candidateSkills...), jobSkills...))

	candidateVec := make([]float64, 0, len(union))
	jobVec := make([]float64, 0, len(union))

	for _, skill := range union {
		score := 0.0
		for _, candidate := range candidateSkills {
			if skill == candidate {
				score = 1.0
			} else if strings.Contains(candidate, skill) || strings.Contains(skill, candidate) {
				score = math.Max(score, 0.7)
			}
		}
		candidateVec = append(candidateVec, score)

		if lo.Contains(jobSkills, skill) {
			jobVec = append(jobVec, 1.0)
		} else {
			jobVec = append(jobVec, 0.0)
		}
	}

	return candidateVec, jobVec
}

func cosineSimilarity(vec1, vec2 []float64) float64 {
	if len(vec1) == 0 || len(vec2) == 0 {
		return 0
	}

	var dot, norm1, norm2 float64
	for i := range vec1 {
		dot += vec1[i] * vec2[i]
		norm1 += vec1[i] * vec1[i]
		norm2 += vec2[i] * vec2[i]
	}

	if norm1 == 0 || norm2 == 0 {
		return 0
	}
	return dot / (math.Sqrt(norm1) * math.Sqrt(norm2))
}

func (m *Matcher) scoreExperience(profile *entities.Profile, job *entities.Job) float64 {
	band, ok := experienceBands[job.ExperienceLevel]
	if !ok {
		return 50.0
	}

	years := profile.CurrentExperienceYears(m.now())
	minYears, maxYears := band[0], band[1]

	switch {
	case years >= minYears && years <= maxYears:
		return 100.0
	case years < minYears:
		// Underqualification costs 20 points per missing year.
		return math.Max(0, 100-(minYears-years)*20)
	default:
		// Overqualification is penalized far more gently.
		return math.Max(70, 100-(years-maxYears)*5)
	}
}

func scoreLocation(profile *entities.Profile, job *entities.Job) float64 {
	if job.IsRemote {
		if profile.RemotePreference.AcceptsRemote() {
			return 100.0
		}
		return 70.0 // reachable, just not preferred
	}

	preferred := lo.Map(profile.PreferredLocationsAsArray(), func(loc string, _ int) string {
		return strings.ToLower(loc)
	})
	if len(preferred) == 0 {
		return 50.0
	}

	jobLocation := strings.ToLower(job.Location)

	for _, loc := range preferred {
		if strings.Contains(jobLocation, loc) || strings.Contains(loc, jobLocation) {
			return 100.0
		}
	}

	// Same city or region: any shared token longer than two characters.
	jobTokens := strings.Fields(jobLocation)
	for _, loc := range preferred {
		for _, part := range strings.Fields(loc) {
			if len(part) > 2 && lo.Contains(jobTokens, part) {
				return 80.0
			}
		}
	}

	return 20.0
}

func scoreSalary(profile *entities.Profile, job *entities.Job) float64 {
	if profile.PreferredSalaryMin == nil || job.SalaryMax == nil {
		return 75.0 // not enough data to penalize
	}

	candidateMin := *profile.PreferredSalaryMin
	candidateMax := candidateMin * 1.5
	if profile.PreferredSalaryMax != nil {
		candidateMax = *profile.PreferredSalaryMax
	}

	jobMin := 0.0
	if job.SalaryMin != nil {
		jobMin = *job.SalaryMin
	}
	jobMax := *job.SalaryMax

	overlapStart := math.Max(candidateMin, jobMin)
	overlapEnd := math.Min(candidateMax, jobMax)

	if overlapEnd >= overlapStart {
		width := candidateMax - candidateMin
		if width > 0 {
			overlapShare := (overlapEnd - overlapStart) / width
			return math.Min(100.0, 80.0+overlapShare*20.0)
		}
		return 90.0
	}

	if candidateMin > jobMax {
		// Candidate wants more than the job offers; penalty scales with
		// the relative gap.
		gap := (candidateMin - jobMax) / jobMax * 100
		return math.Max(20, 80-gap)
	}

	// Job pays more than the candidate asked for.
	return 95.0
}
