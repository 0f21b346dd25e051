package artwork

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"artcatalog/internal/domain/attachment"
)

func setupTestService(t *testing.T) (*Service, string) {
	t.Helper()
	dsn := fmt.Sprintf("file:artwork_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Artwork{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	dir := t.TempDir()
	store, err := attachment.NewStore(dir, log.Default())
	if err != nil {
		t.Fatalf("failed to create attachment store: %v", err)
	}

	return NewService(NewRepository(db), store), dir
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("artwork_image", name)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}
	return form.File["artwork_image"][0]
}

func fileExists(t *testing.T, dir, name string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

func TestCreateThenGetReturnsSubmittedFields(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	form := &Form{
		ArtistName:      "Ann Author",
		Title:           "Morning Light",
		CurrentLocation: "Storage B",
		Value:           "1250.50",
		Materials:       "Oil on canvas",
		Provenance:      "Private collection",
	}
	created, err := svc.Create(ctx, form, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.UUID == "" {
		t.Fatal("expected a public identifier to be assigned")
	}
	if created.DateAdded != time.Now().Format("2006-01-02") {
		t.Fatalf("expected date added to be today, got %q", created.DateAdded)
	}

	for i := 0; i < 3; i++ {
		got, err := svc.Get(ctx, created.UUID)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if got.ArtistName != "Ann Author" || got.Title != "Morning Light" {
			t.Fatalf("unexpected record: %+v", got)
		}
		if got.Value != 1250.50 {
			t.Fatalf("expected value 1250.50, got %v", got.Value)
		}
		if got.CurrentLocation != "Storage B" || got.Materials != "Oil on canvas" {
			t.Fatalf("unexpected optional fields: %+v", got)
		}
		if got.ImageFilename != nil {
			t.Fatalf("expected no image filename, got %q", *got.ImageFilename)
		}
	}
}

func TestCreateAssignsDistinctIdentifiers(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		a, err := svc.Create(ctx, &Form{ArtistName: "A", Title: fmt.Sprintf("W%d", i)}, nil)
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if seen[a.UUID] {
			t.Fatalf("duplicate identifier %s", a.UUID)
		}
		seen[a.UUID] = true
	}
}

func TestCreateSubstitutesDefaults(t *testing.T) {
	svc, _ := setupTestService(t)

	a, err := svc.Create(context.Background(), &Form{Value: "abc"}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if a.ArtistName != "Unknown Artist" {
		t.Fatalf("expected default artist name, got %q", a.ArtistName)
	}
	if a.Title != "Untitled" {
		t.Fatalf("expected default title, got %q", a.Title)
	}
	if a.Value != 0.0 {
		t.Fatalf("expected value 0.0, got %v", a.Value)
	}
}

func TestListSortOrder(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	for _, rec := range []struct{ artist, title string }{
		{"Zed", "1"},
		{"Ann", "B"},
		{"Ann", "A"},
	} {
		if _, err := svc.Create(ctx, &Form{ArtistName: rec.artist, Title: rec.title}, nil); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	artworks, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(artworks) != 3 {
		t.Fatalf("expected 3 artworks, got %d", len(artworks))
	}

	want := []struct{ artist, title string }{
		{"Ann", "A"},
		{"Ann", "B"},
		{"Zed", "1"},
	}
	for i, w := range want {
		if artworks[i].ArtistName != w.artist || artworks[i].Title != w.title {
			t.Fatalf("position %d: expected %s/%s, got %s/%s",
				i, w.artist, w.title, artworks[i].ArtistName, artworks[i].Title)
		}
	}
}

func TestAttachmentLifecycle(t *testing.T) {
	svc, dir := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &Form{ArtistName: "A", Title: "T"}, fileHeader(t, "scan.png", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	wantPNG := created.UUID + ".png"
	if created.ImageFilename == nil || *created.ImageFilename != wantPNG {
		t.Fatalf("expected image filename %q, got %v", wantPNG, created.ImageFilename)
	}
	if !fileExists(t, dir, wantPNG) {
		t.Fatalf("expected %s to exist on disk", wantPNG)
	}

	updated, err := svc.Update(ctx, created.UUID, &Form{ArtistName: "A", Title: "T"}, fileHeader(t, "photo.JPG", []byte("jpg-bytes")))
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	wantJPG := created.UUID + ".jpg"
	if updated.ImageFilename == nil || *updated.ImageFilename != wantJPG {
		t.Fatalf("expected image filename %q, got %v", wantJPG, updated.ImageFilename)
	}
	if fileExists(t, dir, wantPNG) {
		t.Fatalf("expected %s to be removed after replace", wantPNG)
	}
	if !fileExists(t, dir, wantJPG) {
		t.Fatalf("expected %s to exist on disk", wantJPG)
	}

	if err := svc.Delete(ctx, created.UUID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if fileExists(t, dir, wantJPG) {
		t.Fatalf("expected %s to be removed with the record", wantJPG)
	}
	if _, err := svc.Get(ctx, created.UUID); !errors.Is(err, ErrArtworkNotFound) {
		t.Fatalf("expected ErrArtworkNotFound after delete, got %v", err)
	}
}

func TestRejectedExtensionSkipsAttachment(t *testing.T) {
	svc, dir := setupTestService(t)

	created, err := svc.Create(context.Background(), &Form{ArtistName: "A", Title: "T"}, fileHeader(t, "payload.exe", []byte("nope")))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ImageFilename != nil {
		t.Fatalf("expected no image filename, got %q", *created.ImageFilename)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written, found %d", len(entries))
	}
}

func TestUpdateWithoutFileKeepsAttachment(t *testing.T) {
	svc, dir := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &Form{ArtistName: "A", Title: "T"}, fileHeader(t, "scan.gif", []byte("gif-bytes")))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	name := *created.ImageFilename

	updated, err := svc.Update(ctx, created.UUID, &Form{ArtistName: "A", Title: "Renamed"}, nil)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ImageFilename == nil || *updated.ImageFilename != name {
		t.Fatalf("expected attachment %q to survive the update, got %v", name, updated.ImageFilename)
	}
	if !fileExists(t, dir, name) {
		t.Fatalf("expected %s to still exist", name)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("expected title to change, got %q", updated.Title)
	}
}

func TestUpdateMissingArtwork(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Update(context.Background(), "no-such-uuid", &Form{ArtistName: "A"}, nil)
	if !errors.Is(err, ErrArtworkNotFound) {
		t.Fatalf("expected ErrArtworkNotFound, got %v", err)
	}
}

func TestDeleteMissingArtwork(t *testing.T) {
	svc, _ := setupTestService(t)

	if err := svc.Delete(context.Background(), "no-such-uuid"); !errors.Is(err, ErrArtworkNotFound) {
		t.Fatalf("expected ErrArtworkNotFound, got %v", err)
	}
}

func TestUpdateNeverChangesIdentity(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &Form{ArtistName: "A", Title: "T"}, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(ctx, created.UUID, &Form{ArtistName: "B", Title: "U"}, nil)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.UUID != created.UUID {
		t.Fatalf("public identifier changed: %s -> %s", created.UUID, updated.UUID)
	}
	if updated.DateAdded != created.DateAdded {
		t.Fatalf("date added changed: %s -> %s", created.DateAdded, updated.DateAdded)
	}
}
