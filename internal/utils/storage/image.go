package storage

import (
	"bytes"
	"cooking-half/domain"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

const (
	maxFileSize = 5 << 20 // 5 MiB
	maxWidth    = 800
	maxHeight   = 800
	jpegQuality = 85
	sniffLen    = 2048
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// checkImage runs the acceptance sequence: non-empty, size cap, extension
// whitelist, then a content sniff of the first 2 KiB. The sniff catches
// mislabeled files the extension check misses.
func checkImage(filename string, size int64, r io.Reader) error {
	if size == 0 {
		return domain.NewUploadError("no file provided")
	}
	if size > maxFileSize {
		return domain.NewUploadError("file size exceeds maximum limit of %dMB", maxFileSize/1024/1024)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return domain.NewUploadError("file type not allowed, allowed types: png, jpg, jpeg, gif")
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return domain.NewUploadError("error reading file: %v", err)
	}
	if !strings.HasPrefix(mimetype.Detect(head[:n]).String(), "image/") {
		return domain.NewUploadError("file must be an image")
	}
	return nil
}

// optimizeImage normalizes an accepted upload: decode, downscale to fit
// within 800x800 without upscaling, re-encode as quality-85 JPEG.
func optimizeImage(r io.Reader) (*bytes.Buffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, domain.NewUploadError("error processing image: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, domain.NewUploadError("error encoding image: %v", err)
	}
	return buf, nil
}
