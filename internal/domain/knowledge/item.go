package knowledge

import (
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/itsmkb/internal/domain"
	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
)

// TimeLayout is the persisted timestamp format (ISO 8601, UTC).
const TimeLayout = time.RFC3339

// Item is a knowledge-base entry as persisted by the item store.
// ID is immutable once assigned.
type Item struct {
	ID        string    `json:"id"`
	ITSMType  itsm.Type `json:"itsm_type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	Severity  string    `json:"severity,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt string    `json:"created_at,omitempty"`
	UpdatedAt string    `json:"updated_at,omitempty"`
}

// Validate checks the caller-controlled fields of an item before it is saved.
func (it *Item) Validate() error {
	if strings.TrimSpace(it.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if it.ITSMType != "" && !it.ITSMType.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownITSMType, it.ITSMType)
	}
	if !itsm.IsValidSeverity(it.Severity) {
		return fmt.Errorf("%w: unknown severity %q", domain.ErrInvalidInput, it.Severity)
	}
	return nil
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	it.Tags = append([]string(nil), it.Tags...)
	return it
}

// HasTag reports whether the item carries tag (exact match).
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ParseTime parses a persisted timestamp. Empty or malformed values yield the zero time.
func ParseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	return time.Time{}
}

// Now returns the current time in the persisted format.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}
