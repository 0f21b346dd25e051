package artwork

// Artwork is the sole catalog entity: one art piece and its metadata.
// The numeric ID stays internal; every external reference uses the UUID,
// which is also the stem of the stored image filename.
type Artwork struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UUID string `gorm:"column:artwork_uuid;uniqueIndex;not null" json:"artwork_uuid"`

	ArtistName    string  `gorm:"column:artist_name;not null" json:"artist_name"`
	Title         string  `gorm:"column:artwork_title;not null" json:"artwork_title"`
	DateAdded     string  `gorm:"column:date_added;not null" json:"date_added"` // YYYY-MM-DD, set once
	ImageFilename *string `gorm:"column:image_filename" json:"image_filename,omitempty"`

	// Administrative & logistical
	CurrentLocation string  `gorm:"column:current_location" json:"current_location"`
	Value           float64 `gorm:"column:artwork_value" json:"artwork_value"`

	// Physical attributes
	Materials        string `gorm:"column:materials" json:"materials"`
	Dimensions       string `gorm:"column:dimensions" json:"dimensions"`
	SignatureDetails string `gorm:"column:signature_details" json:"signature_details"`
	ConditionNotes   string `gorm:"column:condition_notes" json:"condition_notes"`

	// Contextual & descriptive
	SubjectContent    string `gorm:"column:subject_content" json:"subject_content"`
	Description       string `gorm:"column:description" json:"description"`
	ExhibitionHistory string `gorm:"column:exhibition_history" json:"exhibition_history"`
	Provenance        string `gorm:"column:provenance" json:"provenance"`
	Bibliography      string `gorm:"column:bibliography" json:"bibliography"`
}

func (Artwork) TableName() string { return "artworks" }
