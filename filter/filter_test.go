package filter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/bitlog/core"
)

func TestExcludeSubstring(t *testing.T) {
	f := ExcludeSubstring("test", "EXCLUDE")

	assert.Equal(t, "test", f.Name())
	assert.True(t, f.ShouldInclude(core.Text("message 1"), core.InfoLevel))
	assert.False(t, f.ShouldInclude(core.Text("message 2 EXCLUDED"), core.InfoLevel))
	assert.False(t, f.ShouldInclude(core.Msg("EXCLUDE me"), core.InfoLevel))
}

func TestExcludeAttribute(t *testing.T) {
	f := ExcludeAttribute("groups", "group", "analytics", "ads")

	assert.False(t, f.ShouldInclude(core.Msg("analytics event", core.String("group", "analytics")), core.InfoLevel))
	assert.False(t, f.ShouldInclude(core.Msg("ad event", core.String("group", "ads")), core.InfoLevel))
	assert.True(t, f.ShouldInclude(core.Msg("checkout event", core.String("group", "checkout")), core.InfoLevel))
	assert.True(t, f.ShouldInclude(core.Msg("no group"), core.InfoLevel))
	assert.True(t, f.ShouldInclude(core.Text("analytics"), core.InfoLevel))
}

func TestLevelsFilter(t *testing.T) {
	f := Levels("loud", core.WarnLevel|core.ErrorLevel)
	assert.True(t, f.ShouldInclude(core.Text("x"), core.ErrorLevel))
	assert.False(t, f.ShouldInclude(core.Text("x"), core.DebugLevel))
}

func TestFuncGetsUniqueName(t *testing.T) {
	a := Func(func(core.Message, core.Level) bool { return true })
	b := Func(func(core.Message, core.Level) bool { return true })

	assert.NotEqual(t, a.Name(), b.Name())
	_, err := uuid.Parse(a.Name())
	assert.NoError(t, err)
}

func TestChainShortCircuits(t *testing.T) {
	var calls []string
	record := func(name string, result bool) Filter {
		return Named(name, func(core.Message, core.Level) bool {
			calls = append(calls, name)
			return result
		})
	}

	c := NewChain(record("first", true), record("second", false), record("third", true))
	assert.False(t, c.ShouldInclude(core.Text("m"), core.InfoLevel))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestChainEmptyIncludesEverything(t *testing.T) {
	c := NewChain()
	assert.True(t, c.ShouldInclude(core.Text("anything"), core.AllLevels))
	assert.Zero(t, c.Len())
}

func TestChainRemove(t *testing.T) {
	c := NewChain(ExcludeSubstring("test", "FOO"), nil)
	require.Equal(t, 1, c.Len())

	c.Remove("asdf")
	assert.Equal(t, 1, c.Len())

	c.Add(ExcludeSubstring("other", "BAR"))
	c.Add(ExcludeSubstring("test", "BAZ"))
	c.Remove("test")
	filters := c.Filters()
	require.Len(t, filters, 1)
	assert.Equal(t, "other", filters[0].Name())

	c.RemoveAll()
	assert.Empty(t, c.Filters())
	assert.True(t, c.ShouldInclude(core.Text("FOO BAR"), core.InfoLevel))
}

func TestChainFiltersIsCopy(t *testing.T) {
	c := NewChain(ExcludeSubstring("a", "x"))
	got := c.Filters()
	got[0] = nil
	assert.NotNil(t, c.Filters()[0])
}
