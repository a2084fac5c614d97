package filemgr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

type EntityType string
type PictureType string

const (
	EntityArtist   EntityType = "artist"
	EntityTeam     EntityType = "team"
	EntityEvent    EntityType = "event"
	EntityCampaign EntityType = "campaign"
	EntityNews     EntityType = "news"
	EntityUser     EntityType = "user"

	PicProfile PictureType = "profile"
	PicCover   PictureType = "cover"
	PicGallery PictureType = "gallery"
	PicThumb   PictureType = "thumb"
)

var (
	AllowedExtensions = map[PictureType][]string{
		PicProfile: {".jpg", ".jpeg", ".png", ".webp"},
		PicCover:   {".jpg", ".jpeg", ".png", ".webp"},
		PicGallery: {".jpg", ".jpeg", ".png", ".gif", ".webp"},
		PicThumb:   {".jpg"},
	}

	AllowedMIMEs = map[PictureType][]string{
		PicProfile: {"image/jpeg", "image/png", "image/webp"},
		PicCover:   {"image/jpeg", "image/png", "image/webp"},
		PicGallery: {"image/jpeg", "image/png", "image/gif", "image/webp"},
		PicThumb:   {"image/jpeg"},
	}

	PictureSubfolders = map[PictureType]string{
		PicProfile: "profile",
		PicCover:   "cover",
		PicGallery: "gallery",
		PicThumb:   "thumb",
	}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)

const maxUploadBytes = 10 << 20

// SaveFile validates and writes one upload to destDir, returning the
// generated filename.
func SaveFile(reader io.Reader, header *multipart.FileHeader, destDir string, picType PictureType) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isExtensionAllowed(ext, picType) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidExtension, ext, picType)
	}

	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read header: %w", err)
	}
	mimeType := http.DetectContentType(buf[:n])
	if mimeType == "application/octet-stream" {
		if formMime := header.Header.Get("Content-Type"); formMime != "" {
			mimeType = formMime
		}
	}
	if !isMIMEAllowed(mimeType, picType) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidMIME, mimeType, picType)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", destDir, err)
	}

	filename := uuid.New().String() + ext
	fullPath := filepath.Join(destDir, filename)
	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", fullPath, err)
	}
	defer out.Close()

	if _, err := out.Write(buf[:n]); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	written, err := io.Copy(out, io.LimitReader(reader, maxUploadBytes-int64(n)))
	if err != nil {
		return "", fmt.Errorf("write body: %w", err)
	}
	if written+int64(n) >= maxUploadBytes {
		os.Remove(fullPath)
		return "", ErrFileTooLarge
	}

	return filename, nil
}

// SaveFormFile saves the first file under formKey and generates a
// 200px-wide thumbnail alongside it.
func SaveFormFile(form *multipart.Form, formKey string, entity EntityType, picType PictureType, required bool) (string, error) {
	files := form.File[formKey]
	if len(files) == 0 {
		if required {
			return "", fmt.Errorf("missing required file: %s", formKey)
		}
		return "", nil
	}
	file, err := files[0].Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", formKey, err)
	}
	return saveWithThumb(file, files[0], entity, picType)
}

// SaveFormFiles saves every file under formKey, collecting per-file
// errors rather than aborting the batch.
func SaveFormFiles(form *multipart.Form, formKey string, entity EntityType, picType PictureType) ([]string, error) {
	files := form.File[formKey]
	if len(files) == 0 {
		return nil, nil
	}

	var saved []string
	var errs []string
	for _, hdr := range files {
		file, err := hdr.Open()
		if err != nil {
			errs = append(errs, fmt.Sprintf("open %s: %v", hdr.Filename, err))
			continue
		}
		name, err := saveWithThumb(file, hdr, entity, picType)
		if err != nil {
			errs = append(errs, fmt.Sprintf("save %s: %v", hdr.Filename, err))
			continue
		}
		saved = append(saved, name)
	}

	if len(errs) > 0 {
		return saved, fmt.Errorf("one or more errors saving files: %s", strings.Join(errs, "; "))
	}
	return saved, nil
}

func saveWithThumb(file multipart.File, header *multipart.FileHeader, entity EntityType, picType PictureType) (string, error) {
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("decode image %q: %w", header.Filename, err)
	}
	if err := validateDimensions(img, 4000, 4000); err != nil {
		return "", err
	}

	// Re-encode to drop EXIF before anything touches disk.
	stripped := new(bytes.Buffer)
	if err := jpeg.Encode(stripped, img, &jpeg.Options{Quality: 90}); err == nil {
		buf = stripped.Bytes()
	}

	dest := ResolvePath(entity, picType)
	fileName, err := SaveFile(bytes.NewReader(buf), header, dest, picType)
	if err != nil {
		return "", err
	}

	if err := generateThumbnail(img, entity, fileName); err != nil {
		// Thumbnail failure is not fatal, the original is saved.
		fmt.Fprintf(os.Stderr, "thumbnail for %s: %v\n", fileName, err)
	}

	return fileName, nil
}

func generateThumbnail(img image.Image, entity EntityType, baseFilename string) error {
	resized := imaging.Resize(img, 200, 0, imaging.Lanczos)
	name := strings.TrimSuffix(baseFilename, filepath.Ext(baseFilename)) + ".jpg"
	path := filepath.Join(ResolvePath(entity, PicThumb), name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	return jpeg.Encode(out, resized, &jpeg.Options{Quality: 85})
}

func ResolvePath(entity EntityType, picType PictureType) string {
	subfolder, ok := PictureSubfolders[picType]
	if !ok || subfolder == "" {
		subfolder = "misc"
	}
	return filepath.Join("static", "uploads", strings.ToLower(string(entity)), subfolder)
}

func validateDimensions(img image.Image, maxWidth, maxHeight int) error {
	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		return fmt.Errorf("image dimensions %dx%d exceed allowed maximum %dx%d",
			bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)
	}
	return nil
}

func isExtensionAllowed(ext string, picType PictureType) bool {
	for _, a := range AllowedExtensions[picType] {
		if ext == a {
			return true
		}
	}
	return false
}

func isMIMEAllowed(mimeType string, picType PictureType) bool {
	for _, a := range AllowedMIMEs[picType] {
		if mimeType == a {
			return true
		}
	}
	return false
}

func sanitizeFilename(name, ext string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	name = regexp.MustCompile(`[^a-z0-9_\-]`).ReplaceAllString(name, "")
	return name + ext
}
