package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterClass_IconFallback(t *testing.T) {
	assert.Equal(t, "🧙", ClassMage.Icon())
	assert.Equal(t, "🗡️", ClassThief.Icon())
	assert.Equal(t, DefaultClassIcon, CharacterClass("Pirata").Icon())
	assert.False(t, CharacterClass("Pirata").Known())
	assert.Len(t, CharacterClasses, 10)
	for _, c := range CharacterClasses {
		assert.True(t, c.Known(), c)
		assert.NotEqual(t, DefaultClassIcon, c.Icon(), c)
	}
}

func TestElement_ColorFallback(t *testing.T) {
	assert.Equal(t, ColorTokenRed, ElementFire.Color())
	assert.Equal(t, ColorTokenPink, ElementChaos.Color())
	assert.Equal(t, DefaultElementColor, Element("Plasma").Color())
	assert.Len(t, Elements, 10)
}

func TestAvatarPath(t *testing.T) {
	assert.Equal(t, "/avatars/3.jpg", AvatarPath(2))
	assert.Equal(t, AvatarImages[0], AvatarPath(-1))
	assert.Equal(t, AvatarImages[0], AvatarPath(len(AvatarImages)))
}

func TestParseEnumerations(t *testing.T) {
	c, ok := ParseCharacterClass("clérigo")
	assert.True(t, ok)
	assert.Equal(t, ClassCleric, c)

	_, ok = ParseCharacterClass("Pirata")
	assert.False(t, ok)

	e, ok := ParseElement("OSCURIDAD")
	assert.True(t, ok)
	assert.Equal(t, ElementDarkness, e)
}

func TestDefaultCreationData(t *testing.T) {
	d := DefaultCreationData()
	assert.Empty(t, d.Username)
	assert.Equal(t, CharacterClasses[0], d.Class)
	assert.Equal(t, 1, d.Level)
	assert.Equal(t, Elements[0], d.Element)
	assert.Zero(t, d.AvatarIndex)
}

func TestUserPatch_SerialisesOnlyPresentFields(t *testing.T) {
	level := 7
	body, err := json.Marshal(UserPatch{Level: &level})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":7}`, string(body))

	base := DefaultCreationData()
	base.Username = "Lyra"
	assert.Equal(t, 7, UserPatch{Level: &level}.Apply(base).Level)
	assert.Equal(t, "Lyra", UserPatch{Level: &level}.Apply(base).Username)

	full := base.Patch()
	assert.Equal(t, base, full.Apply(UserCreationData{}))
}

func TestEnvelope_Ok(t *testing.T) {
	var env Envelope[User]
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"data":{"id":"u1","username":"Lyra"}}`), &env))
	assert.True(t, env.Ok())

	assert.False(t, Envelope[User]{Success: true}.Ok())
	assert.False(t, Envelope[User]{Success: false, Data: &User{}}.Ok())
}
