package classify

import (
	"sort"
	"strings"

	"github.com/amanshaikhx1/Auto-Dashboard/domain/catalog"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/table"
)

// Scoring weights. Name/alias identity dominates, keyword evidence is
// additive but capped, and sampled-value type agreement contributes the
// remainder. The combined score is clipped to 1.0.
const (
	nameWeight       = 0.6
	keywordWeight    = 0.15
	keywordCap       = 0.3
	typeWeight       = 0.25
	typeMatchMinimum = 0.5 // fraction of samples that must agree before type evidence counts
)

// Config holds classifier tuning
type Config struct {
	SampleSize int // max sample values examined per column
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{SampleSize: 20}
}

// Classifier scores raw columns against the field catalog. It is immutable
// after construction and safe for concurrent use: classification of one
// column never observes state from another.
type Classifier struct {
	config  Config
	catalog *catalog.Registry
	index   []fieldEntry
}

// fieldEntry holds the precomputed matching keys for one catalog field.
type fieldEntry struct {
	def      catalog.FieldDefinition
	order    int
	nameKeys map[string]bool // normalized display name, id and aliases
	keywords []string        // normalized keyword patterns
}

// New builds a classifier over the given catalog.
func New(reg *catalog.Registry, config Config) *Classifier {
	fields := reg.All()
	index := make([]fieldEntry, len(fields))
	for i, def := range fields {
		keys := map[string]bool{
			catalog.NormalizeName(string(def.ID)):  true,
			catalog.NormalizeName(def.DisplayName): true,
		}
		for _, alias := range def.Aliases {
			keys[catalog.NormalizeName(alias)] = true
		}
		keywords := make([]string, 0, len(def.KeywordPatterns))
		for _, kw := range def.KeywordPatterns {
			keywords = append(keywords, catalog.NormalizeName(kw))
		}
		index[i] = fieldEntry{def: def, order: i, nameKeys: keys, keywords: keywords}
	}
	return &Classifier{config: config, catalog: reg, index: index}
}

// Classify scores one raw column against every catalog field and returns
// candidates in descending confidence order. Ties break by catalog
// declaration order, so output is deterministic. Pure function of its input.
func (c *Classifier) Classify(col table.RawColumn) []table.CandidateMatch {
	key := catalog.NormalizeName(col.Name)
	profile := profileSamples(col.SampleValues, c.config.SampleSize)

	candidates := make([]table.CandidateMatch, 0, 8)
	for _, entry := range c.index {
		if match, ok := c.score(key, col.Name, profile, entry); ok {
			candidates = append(candidates, match)
		}
	}

	// Stable sort preserves declaration order among equal confidences
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	return candidates
}

// score computes the confidence of one (column, field) pairing. Pairings
// with zero evidence are dropped.
func (c *Classifier) score(key, rawName string, profile typeProfile, entry fieldEntry) (table.CandidateMatch, bool) {
	var confidence float64
	var reasons []table.MatchReason

	idKey := catalog.NormalizeName(string(entry.def.ID))
	nameKey := catalog.NormalizeName(entry.def.DisplayName)

	if key != "" && entry.nameKeys[key] {
		confidence += nameWeight
		if key == idKey || key == nameKey {
			reasons = append(reasons, table.ReasonNameMatch)
		} else {
			reasons = append(reasons, table.ReasonAliasMatch)
		}
	}

	if key != "" {
		keywordScore := 0.0
		for _, kw := range entry.keywords {
			if kw != "" && containsKeyword(key, kw) {
				keywordScore += keywordWeight
			}
		}
		if keywordScore > keywordCap {
			keywordScore = keywordCap
		}
		if keywordScore > 0 {
			confidence += keywordScore
			reasons = append(reasons, table.ReasonKeywordMatch)
		}
	}

	// Type evidence: fraction of sampled values agreeing with the field's
	// expected type. An empty column contributes 0, never NaN.
	typeFraction := profile.fractionFor(entry.def.ExpectedType)
	if typeFraction >= typeMatchMinimum {
		confidence += typeFraction * typeWeight
		reasons = append(reasons, table.ReasonTypeMatch)
	}

	if confidence <= 0 {
		return table.CandidateMatch{}, false
	}
	if confidence > 1 {
		confidence = 1
	}

	return table.CandidateMatch{
		FieldID:    entry.def.ID,
		ColumnName: rawName,
		Confidence: confidence,
		Reasons:    reasons,
	}, true
}

// containsKeyword reports whether the normalized column key contains the
// normalized keyword pattern.
func containsKeyword(key, keyword string) bool {
	return keyword != "" && strings.Contains(key, keyword)
}
