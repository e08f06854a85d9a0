package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// maxResumeChars bounds the resume text included in the advice prompt.
const maxResumeChars = 4000

// maxJobChars bounds the job text included in the advice prompt.
const maxJobChars = 3000

const advicePrompt = `You are a career advisor reviewing how well a resume fits a job posting.

RESUME:
%s

JOB DESCRIPTION:
%s

COMPUTED MATCH SCORE: %.1f
MATCHED KEYWORDS: %s
MISSING TECHNICAL KEYWORDS: %s
MISSING SOFT SKILL KEYWORDS: %s
CONCEPTS THE RESUME DOES NOT COVER: %s

Using the computed analysis above, write practical advice for the candidate:

1. The two or three most important gaps to close first, and why.
2. For each, a realistic way to close it or demonstrate it (projects, certifications, reframing existing experience).
3. Which existing strengths the resume should emphasize more for this role.
4. A short closing assessment (2-3 sentences) of the overall fit.

Do not restate the scores or keyword lists verbatim. Write plain prose with short headed sections, no JSON.`

// Advisor turns a match result into narrative advice via an LLM client.
type Advisor struct {
	client Client
}

// NewAdvisor creates an Advisor backed by the given client.
func NewAdvisor(client Client) *Advisor {
	return &Advisor{client: client}
}

// Advise generates gap-closing advice for a completed match.
func (a *Advisor) Advise(ctx context.Context, resumeText, jobText string, result *types.MatchResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("advice requires a match result")
	}

	prompt := fmt.Sprintf(advicePrompt,
		truncateRunes(resumeText, maxResumeChars),
		truncateRunes(jobText, maxJobChars),
		result.OverallScore,
		strings.Join(result.Matches.All, ", "),
		strings.Join(result.Missing.Technical, ", "),
		strings.Join(result.Missing.SoftSkills, ", "),
		strings.Join(result.Semantic.MissingConcepts, "; "),
	)

	raw, err := a.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("advice generation failed: %w", err)
	}
	return cleanCodeBlock(raw), nil
}

// truncateRunes cuts a string to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
