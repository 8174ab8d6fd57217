package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawingInstant(t *testing.T) {
	at, err := DrawingInstant("2026-03-10", "14:20")
	require.NoError(t, err)
	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 20, at.Minute())
	assert.Equal(t, "America/Sao_Paulo", at.Location().String())

	_, err = DrawingInstant("10/03/2026", "14:20")
	assert.Error(t, err)
}

func TestExpiredBeyond(t *testing.T) {
	now, err := DrawingInstant("2026-03-10", "23:30")
	require.NoError(t, err)

	// 11:00 drawing, 12.5h earlier: beyond the 12h grace.
	assert.True(t, ExpiredBeyond("2026-03-10", "11:00", 12*time.Hour, now))
	// 14:00 drawing, 9.5h earlier: still within grace.
	assert.False(t, ExpiredBeyond("2026-03-10", "14:00", 12*time.Hour, now))
	// Malformed time never expires.
	assert.False(t, ExpiredBeyond("2026-03-10", "noon", 12*time.Hour, now))
}

func TestBRDate(t *testing.T) {
	got, err := BRDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "10/03/2026", got)

	_, err = BRDate("2026-3-1")
	assert.Error(t, err)
}
