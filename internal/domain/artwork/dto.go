package artwork

import (
	"strconv"
	"strings"
)

// Form carries the user-supplied fields of a create or edit request.
// Every field is optional on the wire; defaulting and numeric parsing
// happen in apply, so a submission is never rejected over its contents.
type Form struct {
	ArtistName        string `form:"artist_name"`
	Title             string `form:"artwork_title"`
	CurrentLocation   string `form:"current_location"`
	Value             string `form:"artwork_value"`
	Materials         string `form:"materials"`
	Dimensions        string `form:"dimensions"`
	SignatureDetails  string `form:"signature_details"`
	ConditionNotes    string `form:"condition_notes"`
	SubjectContent    string `form:"subject_content"`
	Description       string `form:"description"`
	ExhibitionHistory string `form:"exhibition_history"`
	Provenance        string `form:"provenance"`
	Bibliography      string `form:"bibliography"`
}

// apply copies the form onto a record, substituting the sentinel defaults
// for empty required fields and 0.0 for an unparseable value. Identity
// fields (ID, UUID, DateAdded, ImageFilename) are left untouched.
func (f *Form) apply(a *Artwork) *Artwork {
	a.ArtistName = orDefault(f.ArtistName, defaultArtistName)
	a.Title = orDefault(f.Title, defaultTitle)
	a.CurrentLocation = f.CurrentLocation
	a.Value = parseValue(f.Value)
	a.Materials = f.Materials
	a.Dimensions = f.Dimensions
	a.SignatureDetails = f.SignatureDetails
	a.ConditionNotes = f.ConditionNotes
	a.SubjectContent = f.SubjectContent
	a.Description = f.Description
	a.ExhibitionHistory = f.ExhibitionHistory
	a.Provenance = f.Provenance
	a.Bibliography = f.Bibliography
	return a
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func parseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
