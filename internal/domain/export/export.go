package export

import (
	"encoding/xml"
	"strconv"

	"artcatalog/internal/domain/artwork"
)

// Catalog is the downloadable document: artists in input order, each
// holding their works in input order.
type Catalog struct {
	XMLName xml.Name `xml:"ArtCatalog"`
	Artists []Artist
}

type Artist struct {
	XMLName xml.Name `xml:"Artist"`
	Name    string   `xml:"name,attr"`
	Works   []Work
}

// Work fixes the exported element names and their order at definition time,
// so the document layout cannot drift from the record schema. The internal
// id and the artist name (carried on the parent element) are excluded.
type Work struct {
	XMLName           xml.Name `xml:"Artwork"`
	ArtworkUuid       string   `xml:"ArtworkUuid"`
	ArtworkTitle      string   `xml:"ArtworkTitle"`
	DateAdded         string   `xml:"DateAdded"`
	ImageFilename     string   `xml:"ImageFilename"`
	CurrentLocation   string   `xml:"CurrentLocation"`
	ArtworkValue      string   `xml:"ArtworkValue"`
	Materials         string   `xml:"Materials"`
	Dimensions        string   `xml:"Dimensions"`
	SignatureDetails  string   `xml:"SignatureDetails"`
	ConditionNotes    string   `xml:"ConditionNotes"`
	SubjectContent    string   `xml:"SubjectContent"`
	Description       string   `xml:"Description"`
	ExhibitionHistory string   `xml:"ExhibitionHistory"`
	Provenance        string   `xml:"Provenance"`
	Bibliography      string   `xml:"Bibliography"`
}

// Build groups the flat, already-sorted record set by artist, preserving
// the order in which each artist first appears.
func Build(artworks []artwork.Artwork) *Catalog {
	catalog := &Catalog{}
	index := make(map[string]int)

	for _, a := range artworks {
		i, ok := index[a.ArtistName]
		if !ok {
			i = len(catalog.Artists)
			index[a.ArtistName] = i
			catalog.Artists = append(catalog.Artists, Artist{Name: a.ArtistName})
		}
		catalog.Artists[i].Works = append(catalog.Artists[i].Works, newWork(a))
	}
	return catalog
}

// Marshal renders the full document with the XML declaration prepended.
// Output is byte-for-byte deterministic for a given record set.
func Marshal(artworks []artwork.Artwork) ([]byte, error) {
	body, err := xml.MarshalIndent(Build(artworks), "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func newWork(a artwork.Artwork) Work {
	image := ""
	if a.ImageFilename != nil {
		image = *a.ImageFilename
	}
	return Work{
		ArtworkUuid:       a.UUID,
		ArtworkTitle:      a.Title,
		DateAdded:         a.DateAdded,
		ImageFilename:     image,
		CurrentLocation:   a.CurrentLocation,
		ArtworkValue:      strconv.FormatFloat(a.Value, 'f', -1, 64),
		Materials:         a.Materials,
		Dimensions:        a.Dimensions,
		SignatureDetails:  a.SignatureDetails,
		ConditionNotes:    a.ConditionNotes,
		SubjectContent:    a.SubjectContent,
		Description:       a.Description,
		ExhibitionHistory: a.ExhibitionHistory,
		Provenance:        a.Provenance,
		Bibliography:      a.Bibliography,
	}
}
