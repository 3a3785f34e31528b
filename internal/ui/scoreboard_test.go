package ui

import (
	"testing"

	"github.com/playmatatu/minidarts/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLayout(t *testing.T) *game.BoardLayout {
	t.Helper()
	opts := game.DefaultLayoutOptions()
	opts.Center = game.NewVec2(0, 0)
	layout, err := game.NewBoardLayout(opts)
	require.NoError(t, err)
	return layout
}

func TestRenderScoreboardInProgress(t *testing.T) {
	m, err := game.NewMatch(301, 3)
	require.NoError(t, err)
	m.Start()
	_, err = m.Throw(game.NewVec2(0, 150), newLayout(t))
	require.NoError(t, err)

	out := RenderScoreboard(m)
	assert.Contains(t, out, "Mini Darts")
	assert.Contains(t, out, "281")
	assert.Contains(t, out, "301")
	assert.Contains(t, out, "Darts left:")
	assert.Contains(t, out, "2")
}

func TestRenderScoreboardWinner(t *testing.T) {
	m, err := game.NewMatch(50, 3)
	require.NoError(t, err)
	m.Start()
	_, err = m.Throw(game.NewVec2(0, 0), newLayout(t))
	require.NoError(t, err)

	assert.Contains(t, RenderScoreboard(m), "Winner: PLAYER")
}

func TestRenderScoreboardWaiting(t *testing.T) {
	m, err := game.NewMatch(301, 3)
	require.NoError(t, err)
	assert.Contains(t, RenderScoreboard(m), "WAITING")
}

func TestRenderDebug(t *testing.T) {
	layout := newLayout(t)
	res := game.ResolveShot(game.NewVec2(0, 150), layout)

	out := RenderDebug(res, 2)
	assert.Contains(t, out, "S20")
	assert.Contains(t, out, "150")
	assert.Contains(t, out, "0.5")
	assert.Contains(t, out, "9")
}

func TestHitColor(t *testing.T) {
	assert.Equal(t, ColorError, HitColor(game.HitMiss))
	assert.Equal(t, ColorWarning, HitColor(game.HitTreble))
	assert.Equal(t, ColorSuccess, HitColor(game.HitBullseye))
	assert.Equal(t, ColorForeground, HitColor(game.HitSingle))
}
