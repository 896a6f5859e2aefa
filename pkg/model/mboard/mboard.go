package mboard

import (
	"errors"
	"time"

	"boards-backend/pkg/idwrap"
)

// ReservedKeywords can never be used as a board slug; they collide with
// routes the application layer mounts next to board names.
var ReservedKeywords = []string{
	"account", "accounts", "admin", "api", "app", "boards", "cards",
	"comments", "login", "logout", "search", "settings", "signin",
	"signout", "signup", "static",
}

var ErrReservedSlug = errors.New("slug is a reserved keyword")

func IsReservedKeyword(slug string) bool {
	for _, word := range ReservedKeywords {
		if slug == word {
			return true
		}
	}
	return false
}

type Board struct {
	ID              idwrap.IDWrap
	Name            string
	Slug            string
	AccountID       idwrap.IDWrap
	CreatedBy       idwrap.IDWrap
	IsShared        bool
	ThumbnailSmPath string
	ThumbnailMdPath string
	ThumbnailLgPath string
	Updated         time.Time
}

func (b Board) GetCreatedTime() time.Time {
	return b.ID.Time()
}
