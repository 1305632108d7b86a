package gita

import "fmt"

// Visibility is the publication-exposure state of a chapter or verse. Only
// published rows are ever returned by public-facing queries.
type Visibility string

const (
	VisibilityDraft     Visibility = "draft"
	VisibilityHidden    Visibility = "hidden"
	VisibilityPublished Visibility = "published"
)

func ParseVisibility(s string) (Visibility, error) {
	switch v := Visibility(s); v {
	case VisibilityDraft, VisibilityHidden, VisibilityPublished:
		return v, nil
	default:
		return "", fmt.Errorf("unknown visibility %q", s)
	}
}

func (v Visibility) Valid() bool {
	_, err := ParseVisibility(string(v))
	return err == nil
}

// ToggleVisibility flips between published and hidden. Draft is not a toggle
// target: a draft row can only leave draft through an explicit edit.
func ToggleVisibility(v Visibility) (Visibility, error) {
	switch v {
	case VisibilityPublished:
		return VisibilityHidden, nil
	case VisibilityHidden:
		return VisibilityPublished, nil
	default:
		return v, fmt.Errorf("cannot toggle visibility %q, only published and hidden can be toggled", v)
	}
}

// Status is the production-pipeline stage of a verse, independent of its
// visibility. A verse can be published status while still hidden.
type Status string

const (
	StatusPending    Status = "pending"
	StatusUploaded   Status = "uploaded"
	StatusProcessing Status = "processing"
	StatusPublished  Status = "published"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusUploaded, StatusProcessing, StatusPublished:
		return st, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}
