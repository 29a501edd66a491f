// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package elections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	name, ok := Name("past-election-1")
	assert.True(t, ok)
	assert.Equal(t, "2023 City Council Election", name)

	_, ok = Name("e1")
	assert.False(t, ok)
}

func TestNameOr(t *testing.T) {
	assert.Equal(t, "2024 Community Leadership Election", NameOr(FeaturedElectionID))
	assert.Equal(t, "e1", NameOr("e1"))
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	assert.Len(t, all, 5)
	all[0].Title = "changed"
	assert.Equal(t, "2024 Community Leadership Election", All()[0].Title)
}

func TestFeaturedBallot(t *testing.T) {
	question, options := FeaturedBallot()
	assert.NotEmpty(t, question)
	assert.Len(t, options, 4)
	for _, o := range options {
		assert.NotEmpty(t, o.Text)
		assert.NotNil(t, o.Image)
	}
}
