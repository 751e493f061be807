package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"reasonbridge/internal/cache"
	"reasonbridge/internal/model"
	"reasonbridge/internal/repository"
)

const (
	maxAgreementZones    = 5
	maxDivergencePoints  = 5
	maxBridgeSuggestions = 3

	// a theme must recur on one side to count as a divergence point
	divergenceMinCount = 2
)

var wordPattern = regexp.MustCompile(`[a-z]{5,}`)

// commonWords are excluded from theme extraction
var commonWords = map[string]bool{
	"about": true, "after": true, "again": true, "agree": true, "because": true,
	"before": true, "being": true, "believe": true, "could": true, "doesn": true,
	"every": true, "going": true, "other": true, "people": true, "point": true,
	"really": true, "should": true, "something": true, "their": true, "there": true,
	"these": true, "thing": true, "things": true, "think": true, "those": true,
	"through": true, "where": true, "which": true, "while": true, "would": true,
}

// CommonGroundService aggregates participant positions on a topic into
// agreement zones, divergence points, and bridging suggestions. The
// aggregation is purely lexical and deterministic: shared themes are words
// that recur across opposing stances.
type CommonGroundService struct {
	responseRepo repository.ResponseRepo
	cgCache      cache.CommonGroundCache
}

// NewCommonGroundService creates a common-ground service
func NewCommonGroundService(responseRepo repository.ResponseRepo, cgCache cache.CommonGroundCache) *CommonGroundService {
	return &CommonGroundService{
		responseRepo: responseRepo,
		cgCache:      cgCache,
	}
}

// Summarize builds (or returns the cached) common-ground summary for a topic
func (s *CommonGroundService) Summarize(ctx context.Context, topicID string) (*model.CommonGroundSummary, error) {
	if s.cgCache != nil {
		cached, err := s.cgCache.Get(ctx, topicID)
		if err != nil {
			log.Printf("common ground cache get failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	responses, err := s.responseRepo.GetByTopicID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	summary := Aggregate(topicID, responses)

	if s.cgCache != nil {
		if err := s.cgCache.Set(ctx, summary); err != nil {
			log.Printf("common ground cache set failed: %v", err)
		}
	}

	return summary, nil
}

// Aggregate computes the common-ground summary from a response set
func Aggregate(topicID string, responses []*model.Response) *model.CommonGroundSummary {
	summary := &model.CommonGroundSummary{
		TopicID:             topicID,
		TotalResponses:      len(responses),
		AgreementZones:      []model.AgreementZone{},
		DivergencePoints:    []model.DivergencePoint{},
		BridgingSuggestions: []model.BridgingSuggestion{},
		GeneratedAt:         time.Now(),
	}

	supportThemes := map[string]int{}
	opposeThemes := map[string]int{}

	for _, r := range responses {
		switch r.Stance {
		case model.StanceSupport:
			summary.SupportCount++
			countThemes(r.Content, supportThemes)
		case model.StanceOppose:
			summary.OpposeCount++
			countThemes(r.Content, opposeThemes)
		default:
			summary.NeutralCount++
		}
	}

	// Agreement zones: themes raised by both sides, weighted by combined count
	for theme, sc := range supportThemes {
		if oc := opposeThemes[theme]; oc > 0 {
			summary.AgreementZones = append(summary.AgreementZones, model.AgreementZone{
				Theme:        theme,
				SupportCount: sc,
				OpposeCount:  oc,
			})
		}
	}
	sort.Slice(summary.AgreementZones, func(i, j int) bool {
		a, b := summary.AgreementZones[i], summary.AgreementZones[j]
		if at, bt := a.SupportCount+a.OpposeCount, b.SupportCount+b.OpposeCount; at != bt {
			return at > bt
		}
		return a.Theme < b.Theme
	})
	if len(summary.AgreementZones) > maxAgreementZones {
		summary.AgreementZones = summary.AgreementZones[:maxAgreementZones]
	}

	// Divergence points: themes recurring on one side and absent on the other
	summary.DivergencePoints = append(summary.DivergencePoints,
		oneSidedThemes(supportThemes, opposeThemes, model.StanceSupport)...)
	summary.DivergencePoints = append(summary.DivergencePoints,
		oneSidedThemes(opposeThemes, supportThemes, model.StanceOppose)...)
	sort.Slice(summary.DivergencePoints, func(i, j int) bool {
		a, b := summary.DivergencePoints[i], summary.DivergencePoints[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Theme < b.Theme
	})
	if len(summary.DivergencePoints) > maxDivergencePoints {
		summary.DivergencePoints = summary.DivergencePoints[:maxDivergencePoints]
	}

	summary.BridgingSuggestions = bridgingSuggestions(summary)

	return summary
}

func countThemes(content string, themes map[string]int) {
	for _, w := range wordPattern.FindAllString(strings.ToLower(content), -1) {
		if !commonWords[w] {
			themes[w]++
		}
	}
}

func oneSidedThemes(side, other map[string]int, stance model.Stance) []model.DivergencePoint {
	var points []model.DivergencePoint
	for theme, count := range side {
		if count >= divergenceMinCount && other[theme] == 0 {
			points = append(points, model.DivergencePoint{
				Theme:  theme,
				Stance: stance,
				Count:  count,
			})
		}
	}
	return points
}

func bridgingSuggestions(summary *model.CommonGroundSummary) []model.BridgingSuggestion {
	suggestions := []model.BridgingSuggestion{}

	for _, zone := range summary.AgreementZones {
		if len(suggestions) == maxBridgeSuggestions {
			break
		}
		suggestions = append(suggestions, model.BridgingSuggestion{
			Theme: zone.Theme,
			Text:  fmt.Sprintf("Both perspectives touch on %q. Asking each side what a good outcome for %q looks like could surface shared goals.", zone.Theme, zone.Theme),
		})
	}

	for _, point := range summary.DivergencePoints {
		if len(suggestions) == maxBridgeSuggestions {
			break
		}
		suggestions = append(suggestions, model.BridgingSuggestion{
			Theme: point.Theme,
			Text:  fmt.Sprintf("Only the %s side has raised %q so far. Inviting the other side to weigh in on it could reveal where the disagreement actually lies.", point.Stance, point.Theme),
		})
	}

	return suggestions
}
