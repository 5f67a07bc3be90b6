package model

import "strings"

// CharacterClass is one of the fixed adventurer classes.
type CharacterClass string

const (
	ClassMage        CharacterClass = "Mago"
	ClassWarrior     CharacterClass = "Guerrero"
	ClassArcher      CharacterClass = "Arquero"
	ClassPaladin     CharacterClass = "Paladín"
	ClassDruid       CharacterClass = "Druida"
	ClassAlchemist   CharacterClass = "Alquimista"
	ClassBard        CharacterClass = "Bardo"
	ClassNecromancer CharacterClass = "Nigromante"
	ClassCleric      CharacterClass = "Clérigo"
	ClassThief       CharacterClass = "Ladrón"
)

// CharacterClasses lists the classes in display order. The first entry is
// the form default.
var CharacterClasses = []CharacterClass{
	ClassMage,
	ClassWarrior,
	ClassArcher,
	ClassPaladin,
	ClassDruid,
	ClassAlchemist,
	ClassBard,
	ClassNecromancer,
	ClassCleric,
	ClassThief,
}

// DefaultClassIcon is shown for classes outside the enumeration.
const DefaultClassIcon = "👤"

var classIcons = map[CharacterClass]string{
	ClassMage:        "🧙",
	ClassWarrior:     "⚔️",
	ClassArcher:      "🏹",
	ClassPaladin:     "🛡️",
	ClassDruid:       "🌿",
	ClassAlchemist:   "⚗️",
	ClassBard:        "🎵",
	ClassNecromancer: "💀",
	ClassCleric:      "✨",
	ClassThief:       "🗡️",
}

// Known reports whether c belongs to the enumeration.
func (c CharacterClass) Known() bool {
	_, ok := classIcons[c]
	return ok
}

// Icon returns the class emoji, or DefaultClassIcon for unknown classes.
func (c CharacterClass) Icon() string {
	if icon, ok := classIcons[c]; ok {
		return icon
	}
	return DefaultClassIcon
}

// Element is one of the fixed magical elements.
type Element string

const (
	ElementFire     Element = "Fuego"
	ElementWater    Element = "Agua"
	ElementEarth    Element = "Tierra"
	ElementAir      Element = "Aire"
	ElementLight    Element = "Luz"
	ElementDarkness Element = "Oscuridad"
	ElementNature   Element = "Naturaleza"
	ElementArcane   Element = "Arcano"
	ElementTime     Element = "Tiempo"
	ElementChaos    Element = "Caos"
)

// Elements lists the elements in display order. The first entry is the
// form default.
var Elements = []Element{
	ElementFire,
	ElementWater,
	ElementEarth,
	ElementAir,
	ElementLight,
	ElementDarkness,
	ElementNature,
	ElementArcane,
	ElementTime,
	ElementChaos,
}

// ColorToken names a palette entry; the ui package resolves it to a
// terminal colour.
type ColorToken string

const (
	ColorTokenRed         ColorToken = "red"
	ColorTokenBlue        ColorToken = "blue"
	ColorTokenEarth       ColorToken = "earth"
	ColorTokenGray        ColorToken = "gray"
	ColorTokenLightYellow ColorToken = "light-yellow"
	ColorTokenPurple      ColorToken = "purple"
	ColorTokenGreen       ColorToken = "green"
	ColorTokenIndigo      ColorToken = "indigo"
	ColorTokenCyan        ColorToken = "cyan"
	ColorTokenPink        ColorToken = "pink"
	ColorTokenWhite       ColorToken = "white"
)

// DefaultElementColor is used for elements outside the enumeration.
const DefaultElementColor = ColorTokenWhite

var elementColors = map[Element]ColorToken{
	ElementFire:     ColorTokenRed,
	ElementWater:    ColorTokenBlue,
	ElementEarth:    ColorTokenEarth,
	ElementAir:      ColorTokenGray,
	ElementLight:    ColorTokenLightYellow,
	ElementDarkness: ColorTokenPurple,
	ElementNature:   ColorTokenGreen,
	ElementArcane:   ColorTokenIndigo,
	ElementTime:     ColorTokenCyan,
	ElementChaos:    ColorTokenPink,
}

// Known reports whether e belongs to the enumeration.
func (e Element) Known() bool {
	_, ok := elementColors[e]
	return ok
}

// Color returns the element's colour token, or DefaultElementColor.
func (e Element) Color() ColorToken {
	if c, ok := elementColors[e]; ok {
		return c
	}
	return DefaultElementColor
}

// AvatarImages is the fixed, ordered avatar list. A user's AvatarIndex
// points into it and must stay valid for the lifetime of the record.
var AvatarImages = []string{
	"/avatars/1.jpg",
	"/avatars/2.jpg",
	"/avatars/3.jpg",
	"/avatars/4.jpg",
}

// ValidAvatar reports whether index addresses an entry of AvatarImages.
func ValidAvatar(index int) bool {
	return index >= 0 && index < len(AvatarImages)
}

// AvatarPath returns the image for index, falling back to the first avatar.
func AvatarPath(index int) string {
	if !ValidAvatar(index) {
		return AvatarImages[0]
	}
	return AvatarImages[index]
}

// ParseCharacterClass matches s against the enumeration, ignoring case.
func ParseCharacterClass(s string) (CharacterClass, bool) {
	for _, c := range CharacterClasses {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return CharacterClass(s), false
}

// ParseElement matches s against the enumeration, ignoring case.
func ParseElement(s string) (Element, bool) {
	for _, e := range Elements {
		if strings.EqualFold(string(e), s) {
			return e, true
		}
	}
	return Element(s), false
}
