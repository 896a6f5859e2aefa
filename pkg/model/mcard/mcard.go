package mcard

import (
	"errors"
	"fmt"
	"time"

	"boards-backend/pkg/idwrap"
)

type CardType string

const (
	TypeNote  CardType = "note"
	TypeFile  CardType = "file"
	TypeStack CardType = "stack"
)

// PreviewSizes are the fixed resolutions requested for file cards.
var PreviewSizes = []string{"200x200", "500x500", "800x800"}

// ReservedKeywords can never be used as a card slug within a board.
var ReservedKeywords = []string{
	"comments", "edit", "new", "stack", "unstack",
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

var (
	ErrContentRequired = errors.New("the content field is required")
	ErrUnknownType     = errors.New("unknown card type")
	ErrUnknownMimeType = errors.New("unknown mime type")
)

type Card struct {
	ID              idwrap.IDWrap
	Name            string
	Type            CardType
	Slug            string
	BoardID         idwrap.IDWrap
	CreatedBy       idwrap.IDWrap
	Position        float64
	StackID         *idwrap.IDWrap
	Featured        bool
	OriginUrl       string
	Content         string
	IsShared        bool
	ThumbnailSmPath string
	ThumbnailMdPath string
	ThumbnailLgPath string
	FileSize        *int64
	MimeType        string
	Updated         time.Time
}

func (c Card) GetCreatedTime() time.Time {
	return c.ID.Time()
}

func (c Card) IsStack() bool {
	return c.Type == TypeStack
}

// Validate enforces the type dependent field constraints. Stacks carry
// no content of their own; every other card must have content.
func (c Card) Validate() error {
	switch c.Type {
	case TypeNote, TypeFile:
	case TypeStack:
		return c.validateStack()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, c.Type)
	}

	if c.Content == "" {
		return ErrContentRequired
	}
	if c.MimeType != "" && !IsKnownMimeType(c.MimeType) {
		return fmt.Errorf("%w: %q", ErrUnknownMimeType, c.MimeType)
	}
	return nil
}

func (c Card) validateStack() error {
	disallowed := []struct {
		name string
		set  bool
	}{
		{"origin_url", c.OriginUrl != ""},
		{"content", c.Content != ""},
		{"thumbnail_sm_path", c.ThumbnailSmPath != ""},
		{"thumbnail_md_path", c.ThumbnailMdPath != ""},
		{"thumbnail_lg_path", c.ThumbnailLgPath != ""},
		{"file_size", c.FileSize != nil},
		{"mime_type", c.MimeType != ""},
	}
	for _, field := range disallowed {
		if field.set {
			return fmt.Errorf("the %s field should not be set on a card stack", field.name)
		}
	}
	return nil
}
