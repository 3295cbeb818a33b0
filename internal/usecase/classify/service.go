package classify

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
	"github.com/kailas-cloud/itsmkb/internal/domain/rules"
	"github.com/kailas-cloud/itsmkb/internal/metrics"
)

// Classifier defaults.
const (
	DefaultThreshold        = 0.3
	DefaultSuggestThreshold = 0.5
)

// Result is the outcome of a classification.
type Result struct {
	ITSMType   itsm.Type             `json:"itsm_type"`
	Confidence float64               `json:"confidence"`
	Scores     map[itsm.Type]float64 `json:"scores"`
	Reason     string                `json:"reason"`
}

// Suggestion is one candidate category returned by SuggestITSMType.
type Suggestion struct {
	ITSMType  itsm.Type `json:"itsm_type"`
	Score     float64   `json:"score"`
	IsPrimary bool      `json:"is_primary"`
}

// MatchDetail explains how a single rule scored a text.
type MatchDetail struct {
	PrimaryMatches   []string `json:"primary_matches"`
	SecondaryMatches []string `json:"secondary_matches"`
	PrimaryCount     int      `json:"primary_count"`
	SecondaryCount   int      `json:"secondary_count"`
	Score            float64  `json:"score"`
}

// compiledRule caches lower-cased keywords next to the originals.
type compiledRule struct {
	rule      rules.Rule
	primary   []string
	secondary []string
	lowerPri  []string
	lowerSec  []string
}

// Service assigns ITSM categories to free text with a weighted keyword table.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	rules     []compiledRule
	threshold float64
	logger    *zap.Logger
}

// New creates a classifier over table. A threshold outside (0,1] falls back to DefaultThreshold.
func New(table rules.Table, threshold float64, logger *zap.Logger) *Service {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rs := table.Rules()
	compiled := make([]compiledRule, len(rs))
	for i, r := range rs {
		pri, sec := r.PrimaryKeywords(), r.SecondaryKeywords()
		compiled[i] = compiledRule{
			rule:      r,
			primary:   pri,
			secondary: sec,
			lowerPri:  lowerAll(pri),
			lowerSec:  lowerAll(sec),
		}
	}
	return &Service{rules: compiled, threshold: threshold, logger: logger}
}

// Classify picks the highest-scoring category for title and content.
// Ties go to the category declared first. A winner scoring below the
// threshold degrades to Other while keeping its raw score as confidence.
func (s *Service) Classify(title, content string) Result {
	res := s.classify(normalize(title, content))
	metrics.ClassificationsTotal.WithLabelValues(string(res.ITSMType)).Inc()
	s.logger.Debug("Text classified",
		zap.String("itsm_type", string(res.ITSMType)),
		zap.Float64("confidence", res.Confidence),
	)
	return res
}

func (s *Service) classify(text string) Result {
	if len(s.rules) == 0 {
		return Result{
			ITSMType:   itsm.Other,
			Confidence: 0,
			Scores:     map[itsm.Type]float64{},
			Reason:     "no classification rules were applied",
		}
	}

	scores := make(map[itsm.Type]float64, len(s.rules))
	winner := s.rules[0].rule.ITSMType()
	best := -1.0
	for _, cr := range s.rules {
		score := cr.score(text)
		scores[cr.rule.ITSMType()] = round2(score)
		if score > best {
			best = score
			winner = cr.rule.ITSMType()
		}
	}

	res := Result{Confidence: round2(best), Scores: scores}
	if best < s.threshold {
		res.ITSMType = itsm.Other
		res.Reason = "could not determine a clear ITSM type"
	} else {
		res.ITSMType = winner
		res.Reason = fmt.Sprintf("characteristic %s keywords were detected", winner)
	}
	return res
}

// SuggestITSMType returns every category whose rounded score reaches threshold,
// highest first. The classified category is flagged as primary.
func (s *Service) SuggestITSMType(title, content string, threshold float64) []Suggestion {
	res := s.classify(normalize(title, content))

	out := make([]Suggestion, 0, len(s.rules))
	for _, cr := range s.rules {
		t := cr.rule.ITSMType()
		score := res.Scores[t]
		if score < threshold {
			continue
		}
		out = append(out, Suggestion{ITSMType: t, Score: score, IsPrimary: t == res.ITSMType})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// MatchingDetails reports, per category, which keywords matched and the unrounded score.
func (s *Service) MatchingDetails(title, content string) map[itsm.Type]MatchDetail {
	text := normalize(title, content)
	out := make(map[itsm.Type]MatchDetail, len(s.rules))
	for _, cr := range s.rules {
		pri := matched(text, cr.primary, cr.lowerPri)
		sec := matched(text, cr.secondary, cr.lowerSec)
		out[cr.rule.ITSMType()] = MatchDetail{
			PrimaryMatches:   pri,
			SecondaryMatches: sec,
			PrimaryCount:     len(pri),
			SecondaryCount:   len(sec),
			Score:            cr.score(text),
		}
	}
	return out
}

// TypeDescriptions returns display metadata for every category.
func (s *Service) TypeDescriptions() map[itsm.Type]itsm.Description {
	return itsm.Descriptions()
}

// Threshold returns the confidence below which results degrade to Other.
func (s *Service) Threshold() float64 { return s.threshold }

func (cr compiledRule) score(text string) float64 {
	pm := countMatches(text, cr.lowerPri)
	sm := countMatches(text, cr.lowerSec)
	pr := math.Min(1, float64(pm)/float64(max(1, len(cr.lowerPri))))
	sr := math.Min(1, float64(sm)/float64(max(1, len(cr.lowerSec))))
	return pr*cr.rule.WeightPrimary() + sr*cr.rule.WeightSecondary()
}

func countMatches(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

func matched(text string, original, lower []string) []string {
	out := []string{}
	for i, kw := range lower {
		if strings.Contains(text, kw) {
			out = append(out, original[i])
		}
	}
	return out
}

func normalize(title, content string) string {
	return strings.ToLower(title + " " + content)
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
