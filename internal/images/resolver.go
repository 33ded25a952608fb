package images

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"github.com/stuttgart-things/workspaces/internal/workspace"
)

var (
	// ErrNoSupportedRuntimeKind marks an image that declares no runtime kinds.
	// This is a fault in the caller's catalog data, not a user error.
	ErrNoSupportedRuntimeKind = errors.New("image declares no supported runtime kind")

	// ErrIncompatibleRuntimeKind is returned when a runtime kind is not supported by an image
	ErrIncompatibleRuntimeKind = errors.New("runtime kind not supported by image")

	// ErrUnknownImage is returned for image names missing from the catalog
	ErrUnknownImage = errors.New("unknown image")

	// ErrEmptyCatalog is returned when no selectable image exists
	ErrEmptyCatalog = errors.New("image catalog has no selectable image")
)

// RuntimeKindsFor returns the runtime kinds supported by image, in declared order
func RuntimeKindsFor(image workspace.Image) ([]workspace.RuntimeKind, error) {
	if len(image.RuntimeKinds) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSupportedRuntimeKind, image.Name)
	}
	return slices.Clone(image.RuntimeKinds), nil
}

// IsCompatible reports whether image can run as kind
func IsCompatible(image workspace.Image, kind workspace.RuntimeKind) bool {
	return slices.Contains(image.RuntimeKinds, kind)
}

// DefaultRuntimeKind keeps previous if image still supports it,
// otherwise falls back to the first kind the image declares.
func DefaultRuntimeKind(image workspace.Image, previous workspace.RuntimeKind) (workspace.RuntimeKind, error) {
	kinds, err := RuntimeKindsFor(image)
	if err != nil {
		return "", err
	}
	if slices.Contains(kinds, previous) {
		return previous, nil
	}
	return kinds[0], nil
}

// Catalog resolves images by name
type Catalog struct {
	images []workspace.Image
}

// NewCatalog creates a catalog from the caller-supplied images. Order is preserved.
func NewCatalog(images []workspace.Image) *Catalog {
	return &Catalog{images: slices.Clone(images)}
}

// Images returns all images, including malformed ones
func (c *Catalog) Images() []workspace.Image {
	return slices.Clone(c.images)
}

// Lookup returns the image with the given name
func (c *Catalog) Lookup(name string) (workspace.Image, error) {
	for _, img := range c.images {
		if img.Name == name {
			return img, nil
		}
	}
	return workspace.Image{}, fmt.Errorf("%w: %q", ErrUnknownImage, name)
}

// Selectable returns the images a user may choose. Images without any
// runtime kind are disabled rather than offered with an invalid kind.
func (c *Catalog) Selectable() []workspace.Image {
	var out []workspace.Image
	for _, img := range c.images {
		if len(img.RuntimeKinds) > 0 {
			out = append(out, img)
		}
	}
	return out
}

// Disabled returns the images excluded from selection because of malformed data
func (c *Catalog) Disabled() []workspace.Image {
	var out []workspace.Image
	for _, img := range c.images {
		if len(img.RuntimeKinds) == 0 {
			out = append(out, img)
		}
	}
	return out
}

// First returns the first selectable image
func (c *Catalog) First() (workspace.Image, error) {
	selectable := c.Selectable()
	if len(selectable) == 0 {
		return workspace.Image{}, ErrEmptyCatalog
	}
	return selectable[0], nil
}

// ForRuntimeKind returns the selectable images that support kind
func (c *Catalog) ForRuntimeKind(kind workspace.RuntimeKind) []workspace.Image {
	var out []workspace.Image
	for _, img := range c.images {
		if IsCompatible(img, kind) {
			out = append(out, img)
		}
	}
	return out
}

// Check reports every data-integrity problem in the catalog
func (c *Catalog) Check() error {
	var errs error
	seen := make(map[string]bool, len(c.images))
	for _, img := range c.images {
		if img.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("image with empty name"))
			continue
		}
		if seen[img.Name] {
			errs = multierr.Append(errs, fmt.Errorf("duplicate image %q", img.Name))
		}
		seen[img.Name] = true

		if _, err := RuntimeKindsFor(img); err != nil {
			errs = multierr.Append(errs, err)
		}
		for _, k := range img.RuntimeKinds {
			if _, err := workspace.ParseRuntimeKind(string(k)); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("image %q: %w", img.Name, err))
			}
		}
	}
	return errs
}
