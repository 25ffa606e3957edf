package core

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLevelValues(t *testing.T) {
	tests := []struct {
		level Level
		want  uint32
	}{
		{OffLevel, 0},
		{DebugLevel, 0b00001},
		{InfoLevel, 0b00010},
		{EventLevel, 0b00100},
		{WarnLevel, 0b01000},
		{ErrorLevel, 0b10000},
		{AllLevels, 0b11111},
	}

	for _, tt := range tests {
		if uint32(tt.level) != tt.want {
			t.Errorf("%s = %b, want %b", tt.level, uint32(tt.level), tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{OffLevel, "Off"},
		{DebugLevel, "Debug"},
		{InfoLevel, "Info"},
		{EventLevel, "Event"},
		{WarnLevel, "Warn"},
		{ErrorLevel, "Error"},
		{AllLevels, "All"},
		{DebugLevel | ErrorLevel, "Unknown"},
		{Level(1 << 8), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %v, want %v", uint32(tt.level), got, tt.want)
		}
	}
}

func TestLevelSetOperations(t *testing.T) {
	mask := DebugLevel.Union(WarnLevel, ErrorLevel)

	assert.True(t, mask.Intersects(WarnLevel))
	assert.False(t, mask.Intersects(InfoLevel))
	assert.Equal(t, WarnLevel, mask.Intersect(WarnLevel|InfoLevel))
	assert.Equal(t, DebugLevel|InfoLevel|EventLevel, AllLevels.Xor(mask))
	assert.True(t, AllLevels.Contains(mask))
	assert.False(t, mask.Contains(AllLevels))
	assert.True(t, OffLevel.IsOff())
	assert.False(t, OffLevel.Intersects(AllLevels))
}

func TestLevelAsMapKey(t *testing.T) {
	custom := Level(1 << 8)
	counts := map[Level]int{}
	counts[DebugLevel]++
	counts[custom]++
	counts[Level(256)]++

	assert.Equal(t, 1, counts[DebugLevel])
	assert.Equal(t, 2, counts[custom])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"Event", EventLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"all", AllLevels},
		{"off", OffLevel},
		{"debug|error", DebugLevel | ErrorLevel},
		{"warn | 256", WarnLevel | Level(1<<8)},
		{"0x100", Level(1 << 8)},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
	_, err = ParseLevel("")
	assert.Error(t, err)
}

func TestLevelTextRoundTrip(t *testing.T) {
	for _, l := range []Level{OffLevel, DebugLevel, AllLevels, InfoLevel | WarnLevel, ErrorLevel | Level(1<<9)} {
		text, err := l.MarshalText()
		require.NoError(t, err)

		var back Level
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, l, back, string(text))
	}
}

func TestLevelDecodesFromConfigFiles(t *testing.T) {
	type appConfig struct {
		Level Level `yaml:"level" toml:"level"`
		Audit Level `yaml:"audit" toml:"audit"`
	}

	var fromYAML appConfig
	require.NoError(t, yaml.Unmarshal([]byte("level: warn|error\naudit: \"0x100\"\n"), &fromYAML))
	assert.Equal(t, WarnLevel|ErrorLevel, fromYAML.Level)
	assert.Equal(t, Level(1<<8), fromYAML.Audit)

	var fromTOML appConfig
	_, err := toml.Decode("level = \"all\"\naudit = \"event\"\n", &fromTOML)
	require.NoError(t, err)
	assert.Equal(t, AllLevels, fromTOML.Level)
	assert.Equal(t, EventLevel, fromTOML.Audit)

	err = yaml.Unmarshal([]byte("level: loud\n"), &fromYAML)
	assert.Error(t, err)
}

func TestLevelsValidate(t *testing.T) {
	require.NoError(t, DefaultLevels().Validate())

	remapped := DefaultLevels()
	remapped.Event = Level(1 << 10)
	require.NoError(t, remapped.Validate())
	assert.Equal(t, "Event", remapped.Name(Level(1<<10)))
	assert.Equal(t, "Unknown", remapped.Name(EventLevel))
	assert.Equal(t, DebugLevel|InfoLevel|Level(1<<10)|WarnLevel|ErrorLevel, remapped.All())

	multiBit := DefaultLevels()
	multiBit.Warn = WarnLevel | ErrorLevel
	assert.Error(t, multiBit.Validate())

	collision := DefaultLevels()
	collision.Info = DebugLevel
	assert.Error(t, collision.Validate())

	zero := DefaultLevels()
	zero.Error = OffLevel
	assert.Error(t, zero.Validate())
}
