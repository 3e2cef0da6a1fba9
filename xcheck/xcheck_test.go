package xcheck

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunAgreesOnSmallFormulas(t *testing.T) {
	cfg := Config{
		NumVars:    4,
		NumClauses: 6,
		Trials:     40,
		Seed:       11,
		Workers:    3,
	}

	disagreement, checked, err := Run(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	assert.Equal(t, cfg.Trials, checked)
	assert.Nil(t, disagreement, "solver disagreed with gini on: %+v", disagreement)
}

func TestRunDefaultsToOneWorker(t *testing.T) {
	cfg := Config{NumVars: 2, NumClauses: 2, Trials: 5, Seed: 1, Workers: 0}
	_, checked, err := Run(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 5, checked)
}

func TestVerdictAgrees(t *testing.T) {
	v := Verdict{OursSat: true, TheirSat: true}
	assert.True(t, v.Agrees())

	v.TheirSat = false
	assert.False(t, v.Agrees())
}
