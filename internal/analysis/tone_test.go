package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reasonbridge/internal/model"
)

func TestAnalyzeToneEmptyInput(t *testing.T) {
	assert.Nil(t, AnalyzeTone(""))
	assert.Nil(t, AnalyzeTone("   \n\t"))
}

func TestAnalyzeTonePersonalAttack(t *testing.T) {
	c := AnalyzeTone("You're stupid if you believe that.")
	require.NotNil(t, c)
	assert.Equal(t, model.FeedbackTypeInflammatory, c.Type)
	assert.Contains(t, c.Subtype, "personal_attack")
	assert.InDelta(t, 0.75, c.ConfidenceScore, 1e-9)
	assert.Len(t, c.EducationalResources, 2)
}

func TestAnalyzeToneHostileOnly(t *testing.T) {
	c := AnalyzeTone("Obviously you don't understand the basics.")
	require.NotNil(t, c)
	assert.Equal(t, "hostile_tone", c.Subtype)
	assert.InDelta(t, 0.75, c.ConfidenceScore, 1e-9)
}

func TestAnalyzeToneCombinedSignalEscalation(t *testing.T) {
	c := AnalyzeTone("You're stupid. Obviously you don't get it.")
	require.NotNil(t, c)
	assert.Equal(t, "personal_attack_with_hostile_tone", c.Subtype)
	assert.Greater(t, c.ConfidenceScore, 0.75)
	assert.Contains(t, c.SuggestionText, "personal attacks")
	assert.Contains(t, c.SuggestionText, "hostile language")
}

func TestAnalyzeToneConfidenceCap(t *testing.T) {
	text := strings.Repeat("Shut up. ", 5)
	c := AnalyzeTone(text)
	require.NotNil(t, c)
	assert.InDelta(t, 0.95, c.ConfidenceScore, 1e-9)
}

func TestAnalyzeToneReasoningMentionsInflammatoryLanguage(t *testing.T) {
	c := AnalyzeTone("You're stupid if you believe that.")
	require.NotNil(t, c)
	assert.Contains(t, c.Reasoning, "inflammatory language")
	assert.Contains(t, c.Reasoning, `"you're stupid"`)
}

func TestAnalyzeToneDeterminism(t *testing.T) {
	text := "You're stupid. Obviously you don't get it."
	assert.Equal(t, AnalyzeTone(text), AnalyzeTone(text))
}

func TestAnalyzeToneCaseInsensitive(t *testing.T) {
	text := "You're stupid if you believe that."
	lower := AnalyzeTone(text)
	upper := AnalyzeTone(strings.ToUpper(text))
	require.NotNil(t, lower)
	assert.Equal(t, lower, upper)
}

func TestAnalyzeToneNoFalsePositives(t *testing.T) {
	for _, text := range respectfulCorpus {
		assert.Nil(t, AnalyzeTone(text), "unexpected tone candidate for %q", text)
	}
}
