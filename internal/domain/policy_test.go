package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParameterKeyCanonical verifies the lookup key is value-based: two
// decimal representations of the same number produce the same key.
func TestParameterKeyCanonical(t *testing.T) {
	p := PolicyParameters{
		MatchRate:     decimal.NewFromFloat(0.03),
		PhaseoutStart: decimal.NewFromFloat(0.5),
		PhaseoutRate:  decimal.NewFromFloat(0.03),
		TakeupRate:    decimal.NewFromFloat(0.85),
		LeakageRate:   decimal.NewFromFloat(0.3),
		ROI:           decimal.NewFromFloat(0.03),
	}

	q := p
	half, err := decimal.NewFromString("0.500")
	require.NoError(t, err)
	q.PhaseoutStart = half

	assert.Equal(t, p.Key(), q.Key())
	assert.True(t, p.Equal(q))

	q.ROI = decimal.NewFromFloat(0.05)
	assert.NotEqual(t, p.Key(), q.Key())
	assert.False(t, p.Equal(q))
}

// TestPhaseoutTerms verifies the two-valued selector expands to the
// documented threshold/decay pairs.
func TestPhaseoutTerms(t *testing.T) {
	start, rate, err := PhaseoutSlow.Terms()
	require.NoError(t, err)
	assert.True(t, start.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.03)))

	start, rate, err = PhaseoutFast.Terms()
	require.NoError(t, err)
	assert.True(t, start.Equal(decimal.NewFromFloat(0.67)))
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.05)))

	_, _, err = PhaseoutScenario("medium").Terms()
	assert.Error(t, err)
}

// TestMatchedRate verifies matched contribution is capped at the matching
// rate and limited by the contribution itself.
func TestMatchedRate(t *testing.T) {
	h := HouseholdInput{
		ContributionRate: decimal.NewFromFloat(0.08),
		MatchRate:        decimal.NewFromFloat(0.05),
	}
	assert.True(t, h.MatchedRate().Equal(decimal.NewFromFloat(0.05)))

	h.ContributionRate = decimal.NewFromFloat(0.02)
	assert.True(t, h.MatchedRate().Equal(decimal.NewFromFloat(0.02)))

	h.ContributionRate = decimal.NewFromFloat(0.05)
	assert.True(t, h.MatchedRate().Equal(decimal.NewFromFloat(0.05)))
}
