// Package suggest turns score gaps and missing keyword/concept sets into
// ranked, typed, human-readable recommendations.
package suggest

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/types"
)

// maxSuggestions caps the returned list regardless of how many categories
// have gaps.
const maxSuggestions = 8

// Score bands for the headline assessment and the strategy stage.
const (
	successBand      = 70.0
	improvementBand  = 40.0
	semanticDepth    = 60.0
	imbalanceSpread  = 20.0
	minConceptLength = 20
)

// Generate produces an ordered suggestion list from a match result. Stages
// run in priority order and stop once the cap is reached. Because every
// collection in the result is already deterministically ordered, generating
// twice from the same result yields the same list.
func Generate(result *types.MatchResult) []types.Suggestion {
	suggestions := []types.Suggestion{}
	add := func(t types.SuggestionType, text string) bool {
		if len(suggestions) >= maxSuggestions {
			return false
		}
		suggestions = append(suggestions, types.Suggestion{Type: t, Text: text})
		return true
	}

	add(headline(result))

	for _, s := range semanticSuggestions(result) {
		if !add(s.Type, s.Text) {
			break
		}
	}

	for i, skill := range result.Missing.Technical {
		if i == 2 {
			break
		}
		if !add(types.SuggestionTechnical, skillTip(skill, technicalTips, genericTechnicalTip)) {
			break
		}
	}

	for i, skill := range result.Missing.SoftSkills {
		if i == 2 {
			break
		}
		if !add(types.SuggestionSoftSkill, skillTip(skill, softSkillTips, genericSoftSkillTip)) {
			break
		}
	}

	if len(result.Missing.General) > 5 {
		for i, keyword := range result.Missing.General {
			if i == 2 {
				break
			}
			if !add(types.SuggestionKeyword, fmt.Sprintf("**%s**: %s", titleCase(keyword), genericKeywordTip)) {
				break
			}
		}
	}

	if text, ok := strategy(result); ok {
		add(types.SuggestionStrategy, text)
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// headline picks the opening assessment from the overall score band, with
// the text varying on whether the semantic score also clears the depth bar.
// Keyword-heavy matches without depth get nudged toward substance; deep
// matches without keywords get nudged toward ATS visibility.
func headline(result *types.MatchResult) (types.SuggestionType, string) {
	deep := result.SemanticScore >= semanticDepth
	switch {
	case result.OverallScore >= successBand && deep:
		return types.SuggestionSuccess,
			"Excellent alignment! Your resume demonstrates both keyword relevance and conceptual understanding of the role requirements."
	case result.OverallScore >= successBand:
		return types.SuggestionSuccess,
			"Excellent keyword coverage! Consider adding more detailed descriptions that demonstrate deeper understanding of the concepts behind these keywords."
	case result.OverallScore >= improvementBand && deep:
		return types.SuggestionImprovement,
			"Your resume shows good conceptual alignment with the role. Focus on incorporating more specific keywords to improve visibility in applicant tracking systems."
	case result.OverallScore >= improvementBand:
		return types.SuggestionImprovement,
			"Your resume shows good potential for this role. With some targeted improvements, you can significantly boost your match score."
	case deep:
		return types.SuggestionFocus,
			"You clearly understand the role conceptually. Now surface it: add the concrete skills and terminology the posting uses so automated screens can see the match."
	default:
		return types.SuggestionFocus,
			"This is a great opportunity to tailor your resume more closely to the job requirements. Small changes can make a big difference."
	}
}

// semanticSuggestions derives up to three suggestions from the semantic
// analysis: missing concepts first, then conceptual gaps, then strong-match
// reinforcement.
func semanticSuggestions(result *types.MatchResult) []types.Suggestion {
	var out []types.Suggestion
	for _, concept := range result.Semantic.MissingConcepts {
		if len(out) >= 3 {
			return out
		}
		if len(concept) > minConceptLength {
			out = append(out, types.Suggestion{
				Type: types.SuggestionSemantic,
				Text: fmt.Sprintf("**Missing Concept**: Consider adding experience or examples related to: '%s'", truncate(concept, 100)),
			})
		}
	}
	for _, gap := range result.Semantic.ConceptualGaps {
		if len(out) >= 3 {
			return out
		}
		out = append(out, types.Suggestion{
			Type: types.SuggestionConceptual,
			Text: fmt.Sprintf("**Conceptual Gap**: Strengthen your resume by highlighting experience in %s", strings.ToLower(gap)),
		})
	}
	if len(out) < 3 && len(result.Semantic.StrongMatches) > 0 {
		out = append(out, types.Suggestion{
			Type: types.SuggestionStrength,
			Text: fmt.Sprintf("Great! You have %d strong conceptual matches. Make sure these experiences are prominently featured in your resume.", len(result.Semantic.StrongMatches)),
		})
	}
	return out
}

// strategy fires at most one suggestion when the keyword and semantic scores
// diverge by more than the imbalance spread, in either direction.
func strategy(result *types.MatchResult) (string, bool) {
	switch {
	case result.KeywordScore-result.SemanticScore > imbalanceSpread:
		return "Your keyword coverage outpaces the depth your resume demonstrates. Back the listed skills with concrete accomplishments so the match holds up past automated screening.", true
	case result.SemanticScore-result.KeywordScore > imbalanceSpread:
		return "Your experience aligns conceptually, but applicant tracking systems may not see it. Mirror the job description's exact terminology in your Skills and Experience sections.", true
	default:
		return "", false
	}
}

// skillTip formats a per-skill suggestion using the lookup table, falling
// back to the generic tip for unknown skills.
func skillTip(skill string, tips map[string]string, generic string) string {
	tip, ok := tips[strings.ToLower(skill)]
	if !ok {
		tip = generic
	}
	return fmt.Sprintf("**%s**: %s", titleCase(skill), tip)
}

// truncate cuts on rune boundaries so multibyte text stays valid UTF-8.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
