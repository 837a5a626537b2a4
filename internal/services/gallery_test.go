package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
)

func TestMediaKindForFilename(t *testing.T) {
	cases := []struct {
		filename string
		want     types.MediaKind
	}{
		{"ceremony.mp4", types.MediaVideo},
		{"first-dance.MOV", types.MediaVideo},
		{"toast.webm", types.MediaVideo},
		{"rings.jpg", types.MediaImage},
		{"venue.png", types.MediaImage},
		{"noextension", types.MediaImage},
	}
	for _, tc := range cases {
		if got := mediaKindForFilename(tc.filename); got != tc.want {
			t.Fatalf("%q: expected %q got %q", tc.filename, tc.want, got)
		}
	}
}

func TestGalleryService_NilBucketRefusesMediaOperations(t *testing.T) {
	gls := &galleryService{}
	ctx := context.Background()
	coupleID, galleryID := uuid.New(), uuid.New()

	if _, err := gls.UploadMedia(ctx, coupleID, galleryID, "rings.jpg", "", strings.NewReader("x")); !errors.Is(err, ErrMediaStorageUnavailable) {
		t.Fatalf("expected ErrMediaStorageUnavailable, got %v", err)
	}
	if _, err := gls.ListMedia(ctx, coupleID, galleryID); !errors.Is(err, ErrMediaStorageUnavailable) {
		t.Fatalf("expected ErrMediaStorageUnavailable, got %v", err)
	}
}
