package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingwatch/regdocs-monitor/constants"
)

func TestStageStatusRoundTrip(t *testing.T) {
	f := &Filing{}
	for _, stage := range constants.Stages {
		require.True(t, f.SetStageStatus(stage, constants.StatusSuccess))
		got, ok := f.StageStatus(stage)
		require.True(t, ok)
		assert.Equal(t, constants.StatusSuccess, got)
	}
}

func TestStageStatusUnknownStage(t *testing.T) {
	f := &Filing{}
	_, ok := f.StageStatus(constants.Stage("uploaded"))
	assert.False(t, ok)
	assert.False(t, f.SetStageStatus(constants.Stage("uploaded"), constants.StatusFailed))
}

func TestStagePredecessorChain(t *testing.T) {
	_, ok := constants.StageScraped.Predecessor()
	assert.False(t, ok, "scraped is the entry stage")

	pred, ok := constants.StageNotified.Predecessor()
	require.True(t, ok)
	assert.Equal(t, constants.StageAnalyzed, pred)

	// Walking predecessors visits every stage in reverse order.
	seen := []constants.Stage{constants.StageNotified}
	for s := constants.StageNotified; ; {
		p, ok := s.Predecessor()
		if !ok {
			break
		}
		seen = append(seen, p)
		s = p
	}
	assert.Len(t, seen, len(constants.Stages))
}
