package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "en", c.Locales()[0])
	assert.ElementsMatch(t, []string{"en", "de", "pt-BR"}, c.Locales())
}

func TestSprintfDamage(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	msg := c.Sprintf("en", KeyDamage, "Bob", 27, 73, "Head")
	assert.Contains(t, msg, "-27 HP")
	assert.Contains(t, msg, "Bob")
	assert.Contains(t, msg, "73 HP left")
	assert.Contains(t, msg, "Head")

	assert.Contains(t, c.Sprintf("en", KeyGrenadeDamage, 32), "HE damage: 32")
}

func TestSprintfOtherLocale(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Contains(t, c.Sprintf("de", KeyGrenadeDamage, 32), "HE-Schaden: 32")
	assert.Contains(t, c.Sprintf("de-AT", KeyEnabled), "aktiviert")
}

func TestSprintfGroupsDigitsPerLocale(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Contains(t, c.Sprintf("en", KeyGrenadeDamage, 1234), "HE damage: 1,234")
	assert.Contains(t, c.Sprintf("de", KeyGrenadeDamage, 1234), "HE-Schaden: 1.234")
}

func TestSprintfFallsBackToBase(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Contains(t, c.Sprintf("ja", KeyDisabled), "disabled")
	assert.Contains(t, c.Sprintf("!!", KeyDisabled), "disabled")
}

func TestLoadFromFSValidation(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"empty": {},
		"no base": {
			"locales/de.yaml": {Data: []byte("locale: de\nmessages:\n  EnabledMessage: an\n")},
		},
		"missing key": {
			"locales/en.yaml": {Data: []byte("locale: en\nmessages:\n  EnabledMessage: on\n")},
		},
		"name mismatch": {
			"locales/en.yaml": {Data: []byte("locale: fr\nmessages: {}\n")},
		},
		"bad yaml": {
			"locales/en.yaml": {Data: []byte("locale: [\n")},
		},
	}

	for name, fsys := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFromFS(fsys)
			assert.Error(t, err)
		})
	}
}
