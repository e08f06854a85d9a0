package semantic

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Vectorization parameters. The vocabulary is capped so pathological inputs
// cannot blow up the term space; n-grams up to three words let short skill
// phrases act as single dimensions.
const (
	maxFeatures = 5000
	maxNGram    = 3
)

var tokenRe = regexp.MustCompile(`\b[a-z0-9][a-z0-9+#.-]+\b`)

// terms tokenizes text into lower-cased words of at least two characters,
// drops English stopwords, and expands the remainder into 1..maxNGram
// word n-grams.
func terms(text string) []string {
	var words []string
	for _, w := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		if !englishStopWords[w] {
			words = append(words, w)
		}
	}

	var out []string
	for n := 1; n <= maxNGram; n++ {
		for i := 0; i+n <= len(words); i++ {
			out = append(out, strings.Join(words[i:i+n], " "))
		}
	}
	return out
}

// vectorizer maps documents into a shared TF-IDF weighted n-gram space.
// It is fitted per comparison over a small, bounded document set, so no
// vocabulary leaks between requests.
type vectorizer struct {
	index map[string]int
	idf   []float64
}

// fit builds the vocabulary and IDF weights from the term lists of all
// documents. When the corpus exceeds maxFeatures distinct terms, the most
// frequent terms win, with lexicographic order breaking ties so the fitted
// space is deterministic.
func fit(docs [][]string) *vectorizer {
	counts := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, t := range doc {
			counts[t]++
			if !seen[t] {
				seen[t] = true
				docFreq[t]++
			}
		}
	}

	vocab := make([]string, 0, len(counts))
	for t := range counts {
		vocab = append(vocab, t)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if counts[vocab[i]] != counts[vocab[j]] {
			return counts[vocab[i]] > counts[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}

	v := &vectorizer{index: make(map[string]int, len(vocab)), idf: make([]float64, len(vocab))}
	n := float64(len(docs))
	sort.Strings(vocab)
	for i, t := range vocab {
		v.index[t] = i
		// Smoothed IDF, so terms present in every document still carry
		// a small positive weight.
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
	return v
}

// transform maps one document's terms to an L2-normalized TF-IDF vector.
func (v *vectorizer) transform(doc []string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, t := range doc {
		if i, ok := v.index[t]; ok {
			vec[i] += v.idf[i]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// cosine returns the cosine similarity of two vectors from the same
// vectorizer. Vectors are already normalized, so this is a dot product;
// a zero vector yields 0.
func cosine(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot > 1 {
		dot = 1 // guard against float drift at the boundary
	}
	return dot
}
