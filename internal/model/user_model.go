// Package model defines the data structures used throughout the guild roster client.
package model

import (
	"encoding/xml"
	"time"
)

// User is an adventurer as returned by the roster API. ID, CreatedAt and
// UpdatedAt are assigned by the server and never set by the client.
type User struct {
	ID          string         `json:"id" xml:"id,attr"`
	Username    string         `json:"username" xml:"username"`
	Class       CharacterClass `json:"class" xml:"class"`
	Level       int            `json:"level" xml:"level,attr"`
	AvatarIndex int            `json:"avatarIndex" xml:"avatarIndex,attr"`
	Element     Element        `json:"element" xml:"element"`
	CreatedAt   time.Time      `json:"createdAt" xml:"createdAt,attr"`
	UpdatedAt   time.Time      `json:"updatedAt" xml:"updatedAt,attr"`
}

// CreationData returns the client-editable subset of the user.
func (u User) CreationData() UserCreationData {
	return UserCreationData{
		Username:    u.Username,
		Class:       u.Class,
		Level:       u.Level,
		Element:     u.Element,
		AvatarIndex: u.AvatarIndex,
	}
}

// UserCreationData holds the fields a client may submit, both for creation
// and for full-record updates.
type UserCreationData struct {
	Username    string         `json:"username"`
	Class       CharacterClass `json:"class"`
	Level       int            `json:"level"`
	Element     Element        `json:"element"`
	AvatarIndex int            `json:"avatarIndex"`
}

// Field rules shared by the form and the stub API.
const (
	MinUsernameLength = 3
	MinLevel          = 1
	MaxLevel          = 100

	MsgUsernameRequired = "El nombre de usuario es obligatorio"
	MsgUsernameShort    = "El nombre debe tener al menos 3 caracteres"
	MsgLevelRange       = "El nivel debe estar entre 1 y 100"
)

// DefaultCreationData returns the blank draft used by the create form.
func DefaultCreationData() UserCreationData {
	return UserCreationData{
		Username:    "",
		Class:       CharacterClasses[0],
		Level:       MinLevel,
		Element:     Elements[0],
		AvatarIndex: 0,
	}
}

// Patch converts the data into a full update patch.
func (d UserCreationData) Patch() UserPatch {
	return UserPatch{
		Username:    &d.Username,
		Class:       &d.Class,
		Level:       &d.Level,
		Element:     &d.Element,
		AvatarIndex: &d.AvatarIndex,
	}
}

// UserPatch is a partial UserCreationData. Nil fields are left untouched
// by the server.
type UserPatch struct {
	Username    *string         `json:"username,omitempty"`
	Class       *CharacterClass `json:"class,omitempty"`
	Level       *int            `json:"level,omitempty"`
	Element     *Element        `json:"element,omitempty"`
	AvatarIndex *int            `json:"avatarIndex,omitempty"`
}

// Apply copies the present patch fields onto data.
func (p UserPatch) Apply(data UserCreationData) UserCreationData {
	if p.Username != nil {
		data.Username = *p.Username
	}
	if p.Class != nil {
		data.Class = *p.Class
	}
	if p.Level != nil {
		data.Level = *p.Level
	}
	if p.Element != nil {
		data.Element = *p.Element
	}
	if p.AvatarIndex != nil {
		data.AvatarIndex = *p.AvatarIndex
	}
	return data
}

// Roster is the exportable snapshot of the cached user list.
type Roster struct {
	XMLName    xml.Name  `json:"-" xml:"roster"`
	ExportedAt time.Time `json:"exportedAt" xml:"exportedAt,attr"`
	Users      []User    `json:"users" xml:"user"`
}
