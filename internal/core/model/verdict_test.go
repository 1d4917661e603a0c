package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVerdictLabel(t *testing.T) {
	cases := []struct {
		in   string
		want VerdictLabel
	}{
		{"true", VerdictTrue},
		{"TRUE", VerdictTrue},
		{"Verified", VerdictTrue},
		{"false", VerdictFalse},
		{"Incorrect", VerdictFalse},
		{"partially_true", VerdictPartiallyTrue},
		{"Partially True", VerdictPartiallyTrue},
		{"partially-true", VerdictPartiallyTrue},
		{"Mixed", VerdictPartiallyTrue},
		{"half true", VerdictPartiallyTrue},
		{"unverifiable", VerdictUnverifiable},
		{"Unknown", VerdictUnverifiable},
		{"insufficient evidence", VerdictUnverifiable},
		{"  true  ", VerdictTrue},
	}

	for _, tc := range cases {
		got, err := ParseVerdictLabel(tc.in)
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseVerdictLabelUnrecognized(t *testing.T) {
	_, err := ParseVerdictLabel("probably")
	assert.Error(t, err)

	_, err = ParseVerdictLabel("")
	assert.Error(t, err)
}
