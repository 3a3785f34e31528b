package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/playmatatu/minidarts/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShot(t *testing.T) {
	s, err := parseShot("-25 150")
	require.NoError(t, err)
	assert.Equal(t, game.NewVec2(-25, 150), s.pos)
	assert.False(t, s.focused)

	s, err = parseShot("1.5 -2 focus")
	require.NoError(t, err)
	assert.Equal(t, game.NewVec2(1.5, -2), s.pos)
	assert.True(t, s.focused)

	for _, bad := range []string{"1", "a 2", "1 b", "1 2 blur", "1 2 3 4"} {
		_, err := parseShot(bad)
		assert.True(t, errors.Is(err, errBadShot), "line %q: err=%v", bad, err)
	}
}

func TestReadShotsSkipsCommentsAndStops(t *testing.T) {
	input := "# warmup\n\n0 0\n10 10 focus\n20 20\n"
	var got []shot
	err := readShots(strings.NewReader(input), func(s shot) bool {
		got = append(got, s)
		return len(got) < 2
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, game.NewVec2(10, 10), got[1].pos)
	assert.True(t, got[1].focused)
}

func TestReadShotsReportsLine(t *testing.T) {
	err := readShots(strings.NewReader("0 0\nnope\n"), func(shot) bool { return true })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.ErrorIs(t, err, errBadShot)
}
