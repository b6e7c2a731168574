package model

import (
	"time"

	"github.com/google/uuid"
)

type ChannelType string

const (
	ChannelDirect     ChannelType = "DIRECT"
	ChannelPublic     ChannelType = "PUBLIC"
	ChannelPrivate    ChannelType = "PRIVATE"
	ChannelRestricted ChannelType = "RESTRICTED"
)

func (t ChannelType) Valid() bool {
	switch t {
	case ChannelDirect, ChannelPublic, ChannelPrivate, ChannelRestricted:
		return true
	}
	return false
}

type Channel struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Basic info
	Name string      `bun:",notnull"`
	Type ChannelType `bun:",notnull,default:'PUBLIC'"`

	// Set iff Type == RESTRICTED; bcrypt digest, never the plaintext
	PasswordDigest string `bun:"passwd,nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
