package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	"image/png"
	"strings"
	"testing"

	"cooking-half/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestCheckImageEmptyFile(t *testing.T) {
	err := checkImage("photo.png", 0, bytes.NewReader(nil))
	require.Error(t, err)

	var uploadErr *domain.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Contains(t, uploadErr.Error(), "no file provided")
}

func TestCheckImageTooLarge(t *testing.T) {
	err := checkImage("photo.png", maxFileSize+1, bytes.NewReader(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file size exceeds maximum limit of 5MB")
}

func TestCheckImageDisallowedExtension(t *testing.T) {
	data := encodePNG(t, 10, 10)
	err := checkImage("notes.txt", int64(len(data)), bytes.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file type not allowed")
}

func TestCheckImageMislabeledContent(t *testing.T) {
	data := []byte(strings.Repeat("definitely not pixels ", 20))
	err := checkImage("fake.png", int64(len(data)), bytes.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file must be an image")
}

func TestCheckImageAcceptsPNG(t *testing.T) {
	data := encodePNG(t, 10, 10)
	assert.NoError(t, checkImage("photo.png", int64(len(data)), bytes.NewReader(data)))
}

func TestOptimizeImageDownscalesToFit(t *testing.T) {
	data := encodePNG(t, 1600, 1200)

	buf, err := optimizeImage(bytes.NewReader(data))
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestOptimizeImageKeepsSmallDimensions(t *testing.T) {
	data := encodePNG(t, 120, 80)

	buf, err := optimizeImage(bytes.NewReader(data))
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestOptimizeImageRejectsGarbage(t *testing.T) {
	_, err := optimizeImage(strings.NewReader("not an image"))
	require.Error(t, err)

	var uploadErr *domain.UploadError
	assert.ErrorAs(t, err, &uploadErr)
}
