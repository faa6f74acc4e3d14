package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		template string
		expected int
	}{
		{"", 0},
		{"forbidden", 0},
		{"not found: {}", 1},
		{"{} of {}", 2},
		{"{}{}{}", 3},
		{"{{}}", 1},
		{"{ }", 0},
		{"}{", 0},
		{"{{}", 1},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.expected, Count(tt.template))
			assert.Len(t, Split(tt.template), tt.expected+1)
		})
	}
}

func TestScanner_ConsumesLeftToRight(t *testing.T) {
	sc := NewScanner("{} of {} done")
	assert.Equal(t, 2, sc.Remaining())

	lit, ok := sc.Next()
	require.True(t, ok)
	assert.Equal(t, "", lit)

	lit, ok = sc.Next()
	require.True(t, ok)
	assert.Equal(t, " of ", lit)
	assert.Equal(t, 0, sc.Remaining())

	_, ok = sc.Next()
	assert.False(t, ok)
	assert.Equal(t, " done", sc.Rest())
}

func TestScanner_RestKeepsUnconsumedMarkers(t *testing.T) {
	sc := NewScanner("a {} b {} c {}")

	_, ok := sc.Next()
	require.True(t, ok)

	assert.Equal(t, 2, sc.Remaining())
	assert.Equal(t, " b {} c {}", sc.Rest())
}

func TestScanner_NoMarkers(t *testing.T) {
	sc := NewScanner("static")

	_, ok := sc.Next()
	assert.False(t, ok)
	assert.Equal(t, "static", sc.Rest())
}
