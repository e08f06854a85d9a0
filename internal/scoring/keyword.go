// Package scoring computes set-intersection match percentages between the
// keyword sets of a resume and a job description.
package scoring

import (
	"math"
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Result is the outcome of keyword scoring. Scores are percentages in
// [0,100] rounded to one decimal; internal computation uses full precision.
type Result struct {
	Overall          float64
	Technical        float64
	SoftSkills       float64
	Matches          types.KeywordSet
	Missing          types.MissingKeywords
	TotalJobKeywords int
	TotalMatches     int
}

// Score compares the resume keyword set against the job keyword set.
// For each category, matches and missing partition the job-side set:
// matches.X union missing.X equals job.X and the two are disjoint.
//
// A job with no keywords at all scores 0 rather than dividing by zero, and
// category denominators are floored at 1 so a job with no technical terms
// yields 0% instead of an undefined ratio. Both are policy choices, not
// errors.
func Score(resume, job types.KeywordSet) Result {
	matches := types.KeywordSet{
		Technical:  intersect(resume.Technical, job.Technical),
		SoftSkills: intersect(resume.SoftSkills, job.SoftSkills),
		General:    intersect(resume.General, job.General),
		All:        intersect(resume.All, job.All),
	}
	missing := types.MissingKeywords{
		Technical:  difference(job.Technical, resume.Technical),
		SoftSkills: difference(job.SoftSkills, resume.SoftSkills),
		General:    difference(job.General, resume.General),
	}

	overall := 0.0
	if len(job.All) > 0 {
		overall = float64(len(matches.All)) / float64(len(job.All)) * 100
	}
	technical := float64(len(matches.Technical)) / float64(max(len(job.Technical), 1)) * 100
	soft := float64(len(matches.SoftSkills)) / float64(max(len(job.SoftSkills), 1)) * 100

	return Result{
		Overall:          round1(overall),
		Technical:        round1(technical),
		SoftSkills:       round1(soft),
		Matches:          matches,
		Missing:          missing,
		TotalJobKeywords: len(job.All),
		TotalMatches:     len(matches.All),
	}
}

// intersect returns the sorted intersection of two keyword slices.
func intersect(a, b []string) []string {
	set := make(map[string]bool, len(a))
	for _, kw := range a {
		set[kw] = true
	}
	out := []string{}
	for _, kw := range b {
		if set[kw] {
			out = append(out, kw)
			set[kw] = false // dedupe
		}
	}
	sort.Strings(out)
	return out
}

// difference returns the sorted elements of a that are not in b.
func difference(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, kw := range b {
		set[kw] = true
	}
	seen := make(map[string]bool, len(a))
	out := []string{}
	for _, kw := range a {
		if !set[kw] && !seen[kw] {
			out = append(out, kw)
			seen[kw] = true
		}
	}
	sort.Strings(out)
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
