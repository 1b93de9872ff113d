package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Accra")
	require.NoError(t, err)

	day, err := parseDay("2024-03-05", loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", day.Format("2006-01-02"))
	assert.Equal(t, loc, day.Location())

	_, err = parseDay("not a date", loc)
	assert.Error(t, err)

	now, err := parseDay("", loc)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}

func TestRootCommandFlags(t *testing.T) {
	code := 0
	cmd := newRootCmd(&code)

	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("date"))
	assert.Equal(t, "./config/config.ini", cmd.Flags().Lookup("config").DefValue)
}
