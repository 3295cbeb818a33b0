package itsmkb

import (
	"time"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
)

// ClassifierService classifies free text into ITSM categories.
type ClassifierService struct {
	svc classifierUseCase
	obs *observer
}

// Classify returns the best category for the text. Texts scoring below the
// threshold are classified as Other.
func (s *ClassifierService) Classify(title, content string) Classification {
	defer s.obs.observe("classify", time.Now(), nil)
	return fromResult(s.svc.Classify(title, content))
}

// Suggest lists every category scoring at least threshold, best first.
func (s *ClassifierService) Suggest(title, content string, threshold float64) []Suggestion {
	defer s.obs.observe("suggest_type", time.Now(), nil)

	in := s.svc.SuggestITSMType(title, content, threshold)
	out := make([]Suggestion, len(in))
	for i, sg := range in {
		out[i] = Suggestion{Type: ITSMType(sg.ITSMType), Score: sg.Score, Primary: sg.IsPrimary}
	}
	return out
}

// Explain reports the matched keywords of every rule.
func (s *ClassifierService) Explain(title, content string) map[ITSMType]KeywordMatch {
	in := s.svc.MatchingDetails(title, content)
	out := make(map[ITSMType]KeywordMatch, len(in))
	for t, d := range in {
		out[ITSMType(t)] = KeywordMatch{
			Primary:   d.PrimaryMatches,
			Secondary: d.SecondaryMatches,
			Score:     d.Score,
		}
	}
	return out
}

// Types describes every ITSM category.
func (s *ClassifierService) Types() map[ITSMType]TypeInfo {
	in := s.svc.TypeDescriptions()
	out := make(map[ITSMType]TypeInfo, len(in))
	for t, d := range in {
		out[ITSMType(t)] = typeInfo(d)
	}
	return out
}

func typeInfo(d itsm.Description) TypeInfo {
	return TypeInfo{
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		Priority:    d.Priority,
		Examples:    append([]string(nil), d.Examples...),
	}
}
