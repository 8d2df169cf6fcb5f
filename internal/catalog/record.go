package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// UnknownCodec is stored when the codec cannot be determined.
const UnknownCodec = "unknown"

// ZeroFPS is the canonical frame-rate value for undetermined or malformed input.
const ZeroFPS = "0.00"

// Record is one catalog entry per unique file path. Path is the primary
// identity key and never changes; Tags is the only field mutated after
// creation.
type Record struct {
	Path          string
	Name          string
	ThumbnailPath string
	PreviewPath   string
	Codec         string
	Width         int
	Height        int
	FPS           string
	Tags          string
}

// NewRecord validates and assembles a record at extraction time. The display
// name derives from the path's basename exactly once; codec casing and frame
// rate formatting are canonicalized so downstream code never needs to.
func NewRecord(path, thumbnailPath, codec string, width, height int, fps string) (Record, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Record{}, errors.New("record path must not be empty")
	}
	if !filepath.IsAbs(path) {
		return Record{}, fmt.Errorf("record path %q must be absolute", path)
	}
	if width < 0 || height < 0 {
		return Record{}, fmt.Errorf("record dimensions must not be negative: %dx%d", width, height)
	}

	codec = strings.ToLower(strings.TrimSpace(codec))
	if codec == "" {
		codec = UnknownCodec
	}

	return Record{
		Path:          path,
		Name:          filepath.Base(path),
		ThumbnailPath: strings.TrimSpace(thumbnailPath),
		Codec:         codec,
		Width:         width,
		Height:        height,
		FPS:           CanonicalFPS(fps),
	}, nil
}

// CanonicalFPS normalizes a decimal frame-rate string to fixed 2-decimal
// formatting, returning "0.00" for anything that does not parse.
func CanonicalFPS(fps string) string {
	value, err := strconv.ParseFloat(strings.TrimSpace(fps), 64)
	if err != nil || value < 0 {
		return ZeroFPS
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// TagList splits the comma-joined tags field into its ordered elements.
func (r Record) TagList() []string {
	if strings.TrimSpace(r.Tags) == "" {
		return nil
	}
	parts := strings.Split(r.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// HasTag reports whether the record carries the tag, compared after trimming.
func (r Record) HasTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	for _, existing := range r.TagList() {
		if existing == tag {
			return true
		}
	}
	return false
}

// ErrTagExists is returned when adding a tag the record already carries.
var ErrTagExists = errors.New("tag already present")

// ErrTagEmpty is returned when a tag trims to the empty string.
var ErrTagEmpty = errors.New("tag must not be empty")

// WithTag returns the tags field with tag appended. Tags behave as an ordered
// set: empty tags are rejected and duplicates leave the field untouched.
func (r Record) WithTag(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return r.Tags, ErrTagEmpty
	}
	if r.HasTag(tag) {
		return r.Tags, ErrTagExists
	}
	tags := append(r.TagList(), tag)
	return strings.Join(tags, ","), nil
}

// WithoutTag returns the tags field with tag removed, preserving the order of
// the remaining elements. Removing an absent tag is a no-op.
func (r Record) WithoutTag(tag string) string {
	tag = strings.TrimSpace(tag)
	kept := make([]string, 0, 4)
	for _, existing := range r.TagList() {
		if existing != tag {
			kept = append(kept, existing)
		}
	}
	return strings.Join(kept, ",")
}
