package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinhayes/basicclient/player"
)

func TestResolveDefaults(t *testing.T) {
	s, err := Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, Settings{
		Host:       "localhost",
		Port:       6665,
		Debug:      false,
		UseLaser:   false,
		Set:        "*",
		Index:      0,
		Mode:       player.DataModePush,
		UpdateRate: 0,
	}, s)
	assert.Equal(t, Defaults(), s)
	assert.Equal(t, "localhost:6665", s.Addr())
}

func TestResolveOptions(t *testing.T) {
	tests := []struct {
		args []string
		want func(*Settings)
	}{
		{[]string{"--host", "robot1"}, func(s *Settings) { s.Host = "robot1" }},
		{[]string{"--host=robot1", "-p", "7000"}, func(s *Settings) { s.Host = "robot1"; s.Port = 7000 }},
		{[]string{"--port=7001"}, func(s *Settings) { s.Port = 7001 }},
		{[]string{"--debug", "--laser"}, func(s *Settings) { s.Debug = true; s.UseLaser = true }},
		{[]string{"--set", "a,b"}, func(s *Settings) { s.Set = "a,b" }},
		{[]string{"-i", "2"}, func(s *Settings) { s.Index = 2 }},
		{[]string{"--index=3"}, func(s *Settings) { s.Index = 3 }},
		{[]string{"-m", "2"}, func(s *Settings) { s.Mode = player.DataModePull }},
		{[]string{"--mode=1"}, func(s *Settings) { s.Mode = player.DataModePush }},
		{[]string{"-u", "12.5"}, func(s *Settings) { s.UpdateRate = 12.5 }},
		{[]string{"stray", "--update=5"}, func(s *Settings) { s.UpdateRate = 5 }},
	}
	for _, test := range tests {
		want := Defaults()
		test.want(&want)

		got, err := Resolve(test.args)
		if assert.NoError(t, err, "%v", test.args) {
			assert.Equal(t, want, got, "%v", test.args)
		}
	}
}

func TestResolveUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--bogus"},
		{"--port", "abc"},
		{"-u", "fast"},
		{"--port=0"},
		{"--port=70000"},
		{"--index=-1"},
		{"--mode=5"},
		{"--update=-2"},
		{"--host="},
	} {
		_, err := Resolve(args)
		var usage *UsageError
		if assert.True(t, errors.As(err, &usage), "%v: %v", args, err) {
			assert.Contains(t, usage.Usage, "Player server settings")
			assert.Contains(t, usage.Usage, "--update")
		}
		assert.False(t, errors.Is(err, ErrHelp), "%v", args)
	}
}

func TestResolveHelp(t *testing.T) {
	_, err := Resolve([]string{"--help"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHelp))

	var usage *UsageError
	require.True(t, errors.As(err, &usage))
	assert.Contains(t, usage.Usage, "Other options")
}

func TestUsage(t *testing.T) {
	u := Usage()
	for _, opt := range []string{"--host", "--port", "--debug", "--laser", "--set", "--index", "--mode", "--update"} {
		assert.Contains(t, u, opt)
	}
}
