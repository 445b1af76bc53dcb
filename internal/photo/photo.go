// Package photo checks driver photos before they are attached to a record.
//
// Only the image header is decoded: the checks need the pixel dimensions and
// the file size, nothing else. JPEG, PNG, BMP, TIFF and WebP are recognised.
package photo

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	// Decoders registered with image.DecodeConfig.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/dmitrijs2005/driverdesk/internal/common"
)

// DefaultMaxSize is the largest accepted photo file, in bytes.
const DefaultMaxSize int64 = 2 * 1024 * 1024

// Info is what the checks need to know about an image file.
type Info struct {
	Width  int
	Height int
	Size   int64
}

// Inspector reads Info for the file at path.
type Inspector func(path string) (Info, error)

// Inspect reads the file size and the pixel dimensions of the image at path.
func Inspect(path string) (Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Info{}, err
	}
	if st.IsDir() {
		return Info{}, fmt.Errorf("%s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("decode %s: %w", path, err)
	}

	slog.Debug("photo inspected", "path", path, "format", format, "width", cfg.Width, "height", cfg.Height, "size", st.Size())
	return Info{Width: cfg.Width, Height: cfg.Height, Size: st.Size()}, nil
}

// Violation names the constraint a photo broke.
type Violation string

const (
	ViolationRatio       Violation = "ratio"
	ViolationOrientation Violation = "orientation"
	ViolationSize        Violation = "size"
)

// ConstraintError reports the first constraint a photo broke.
type ConstraintError struct {
	Violation Violation
	Info      Info
}

func (e *ConstraintError) Error() string {
	switch e.Violation {
	case ViolationRatio:
		return "Image aspect ratio must be 3:4."
	case ViolationOrientation:
		return "Image must be portrait (taller than wide)."
	case ViolationSize:
		return "Image size must not exceed 2 MB."
	default:
		return "Image does not meet the photo requirements."
	}
}

func (e *ConstraintError) Is(target error) bool {
	return target == common.ErrPhotoConstraint
}

// Check applies the constraints in order: height greater than width,
// width:height exactly 3:4, size at most maxSize bytes. Empty dimensions are
// reported as a ratio violation.
func Check(info Info, maxSize int64) error {
	if info.Width <= 0 || info.Height <= 0 {
		return &ConstraintError{Violation: ViolationRatio, Info: info}
	}
	if info.Height <= info.Width {
		return &ConstraintError{Violation: ViolationOrientation, Info: info}
	}
	if info.Width*4 != info.Height*3 {
		return &ConstraintError{Violation: ViolationRatio, Info: info}
	}
	if info.Size > maxSize {
		return &ConstraintError{Violation: ViolationSize, Info: info}
	}
	return nil
}

// IsConstraint reports whether err is a photo constraint violation, as opposed
// to a file that could not be read.
func IsConstraint(err error) bool {
	return errors.Is(err, common.ErrPhotoConstraint)
}
