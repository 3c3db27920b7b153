package cmdlinearg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type matchCase struct {
	z, y        string
	short       bool
	ok          bool
	embedded    string
	hasEmbedded bool
}

func runMatchCases(t *testing.T, r *Registry, cases []matchCase) {
	t.Helper()
	for _, c := range cases {
		embedded, hasEmbedded, ok := r.match(c.z, c.y, c.short)
		assert.EqualValues(t, c.ok, ok, "%+v", c)
		assert.EqualValues(t, c.hasEmbedded, hasEmbedded, "%+v", c)
		assert.EqualValues(t, c.embedded, embedded, "%+v", c)
	}
}

func TestMatchDefaults(t *testing.T) {
	runMatchCases(t, New(), []matchCase{
		{z: "w", y: "w", short: true, ok: true},
		{z: "w5", y: "w", short: true, ok: true, embedded: "5", hasEmbedded: true},
		{z: "w=5", y: "w", short: true, ok: true, embedded: "5", hasEmbedded: true},
		{z: "w:5", y: "w", short: true, ok: true, embedded: "5", hasEmbedded: true},
		{z: "w==5", y: "w", short: true, ok: true, embedded: "=5", hasEmbedded: true},
		{z: "w=", y: "w", short: true, ok: true, embedded: "", hasEmbedded: true},
		{z: "x", y: "w", short: true},
		{z: "w", y: "", short: true},
		{z: "", y: "w", short: true},
		{z: "count", y: "count", ok: true},
		{z: "count=4", y: "count", ok: true, embedded: "4", hasEmbedded: true},
		{z: "count:4", y: "count", ok: true, embedded: "4", hasEmbedded: true},
		{z: "count4", y: "count"},
		{z: "cou", y: "count"},
		{z: "county", y: "count"},
		{z: "", y: "count"},
	})
}

func TestMatchCustomDelimiters(t *testing.T) {
	runMatchCases(t, New(Delimiters('+', '~')), []matchCase{
		{z: "count+4", y: "count", ok: true, embedded: "4", hasEmbedded: true},
		{z: "count~4", y: "count", ok: true, embedded: "4", hasEmbedded: true},
		{z: "count=4", y: "count"},
		{z: "w=4", y: "w", short: true, ok: true, embedded: "=4", hasEmbedded: true},
	})
}

func TestMatchNoDelimiters(t *testing.T) {
	for _, r := range []*Registry{New(NoDelimiters()), New(Delimiters(0))} {
		runMatchCases(t, r, []matchCase{
			{z: "count=4", y: "count"},
			{z: "count", y: "count", ok: true},
			{z: "w=4", y: "w", short: true, ok: true, embedded: "=4", hasEmbedded: true},
			{z: "w\x004", y: "w", short: true, ok: true, embedded: "\x004", hasEmbedded: true},
		})
	}
}

func TestMatchMaxSpellingLength(t *testing.T) {
	long := strings.Repeat("a", 65)
	runMatchCases(t, New(), []matchCase{
		{z: long, y: long},
		{z: long[:64], y: long[:64], ok: true},
	})
	runMatchCases(t, New(MaxSpellingLength(3)), []matchCase{
		{z: "abc=1", y: "abc", ok: true, embedded: "1", hasEmbedded: true},
		{z: "abcd", y: "abcd"},
	})
}

func TestDelimitersOptionInParse(t *testing.T) {
	var n int
	r := New(Delimiters('~'))
	r.MustOption(&n, "n", "num", "", "")
	assert.NoError(t, r.Parse([]string{"--num~3"}))
	assert.EqualValues(t, 3, n)
	assert.EqualValues(t, unknownOption("--num=3"), r.Parse([]string{"--num=3"}))
}
