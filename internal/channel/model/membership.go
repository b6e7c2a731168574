package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

type Permission string

const (
	PermissionNone      Permission = "NONE"
	PermissionMuted     Permission = "MUTED"
	PermissionBanned    Permission = "BANNED"
	PermissionKicked    Permission = "KICKED"
	PermissionCompliant Permission = "COMPLIANT"
)

func (p Permission) Valid() bool {
	switch p {
	case PermissionNone, PermissionMuted, PermissionBanned, PermissionKicked, PermissionCompliant:
		return true
	}
	return false
}

// Membership binds one user to one channel. The composite PK guarantees
// at most one row per (channel, user) pair.
type Membership struct {
	ChannelID uuid.UUID `bun:",pk,type:uuid"`
	Channel   *Channel  `bun:"rel:belongs-to,join:channel_id=id"`

	UserID uuid.UUID `bun:",pk,type:uuid"`

	Role       Role       `bun:",notnull,default:'MEMBER'"`
	Permission Permission `bun:",notnull,default:'NONE'"`

	// Succession order: the earliest-joined candidate is promoted when
	// the owner leaves.
	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
