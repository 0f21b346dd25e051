package artwork

import (
	"context"
	"mime/multipart"
	"sync"
	"time"

	"github.com/google/uuid"

	"artcatalog/internal/domain/attachment"
)

const (
	defaultArtistName = "Unknown Artist"
	defaultTitle      = "Untitled"
	dateFormat        = "2006-01-02"
)

// Service owns the catalog record lifecycle and keeps the attachment store
// consistent with what the records reference.
type Service struct {
	repo  Repository
	files *attachment.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo Repository, files *attachment.Store) *Service {
	return &Service{
		repo:  repo,
		files: files,
		locks: make(map[string]*sync.Mutex),
	}
}

// lock returns the mutex serializing writes to one public identifier, so a
// concurrent edit cannot land between deleting the old image and storing
// the new one.
func (s *Service) lock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[id]
	if !ok {
		m = &sync.Mutex{}
		s.locks[id] = m
	}
	return m
}

// List returns all artworks ordered by artist name, then title.
func (s *Service) List(ctx context.Context) ([]Artwork, error) {
	return s.repo.ListAll(ctx)
}

// Get returns one artwork by its public identifier.
func (s *Service) Get(ctx context.Context, id string) (*Artwork, error) {
	return s.repo.GetByUUID(ctx, id)
}

// Create assigns a fresh public identifier, stores the upload when one was
// provided and allowed, and persists the record. A missing or disallowed
// file means the record is simply saved without an image.
func (s *Service) Create(ctx context.Context, form *Form, file *multipart.FileHeader) (*Artwork, error) {
	id := uuid.New().String()

	var imageFilename *string
	if file != nil && s.files.Allowed(file.Filename) {
		name, err := s.files.Save(id, file)
		if err != nil {
			return nil, err
		}
		imageFilename = &name
	}

	a := form.apply(&Artwork{
		UUID:          id,
		DateAdded:     time.Now().Format(dateFormat),
		ImageFilename: imageFilename,
	})

	if err := s.repo.Create(ctx, a); err != nil {
		if imageFilename != nil {
			s.files.Remove(*imageFilename) // roll back the file on DB error
		}
		return nil, err
	}
	return a, nil
}

// Update replaces every mutable field of an existing record. A valid upload
// replaces the stored image (old file removed best-effort first); otherwise
// the current attachment is untouched. A missing identifier is an explicit
// ErrArtworkNotFound.
func (s *Service) Update(ctx context.Context, id string, form *Form, file *multipart.FileHeader) (*Artwork, error) {
	l := s.lock(id)
	l.Lock()
	defer l.Unlock()

	existing, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		return nil, err
	}

	if file != nil && s.files.Allowed(file.Filename) {
		old := ""
		if existing.ImageFilename != nil {
			old = *existing.ImageFilename
		}
		name, err := s.files.Replace(old, id, file)
		if err != nil {
			return nil, err
		}
		existing.ImageFilename = &name
	}

	form.apply(existing)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the record and its attached image, if any. Image removal
// happens first and is best-effort.
func (s *Service) Delete(ctx context.Context, id string) error {
	l := s.lock(id)
	l.Lock()
	defer l.Unlock()

	existing, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ImageFilename != nil {
		s.files.Remove(*existing.ImageFilename)
	}
	return s.repo.DeleteByUUID(ctx, id)
}
