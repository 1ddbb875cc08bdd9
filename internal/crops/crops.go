// Package crops is the fixed list of crop categories the dashboard offers for a leaf scan.
package crops

import (
	"fmt"
	"slices"

	"github.com/gosimple/slug"
)

type Crop struct {
	// Name is the English name, it's also what the slug is made from.
	Name string
	// Key is the translation key for the crop's name.
	Key string
}

// Slug is the URL form of the name, e.g. used as /camera?crop=<slug>.
func (c Crop) Slug() string {
	return slug.Make(c.Name)
}

// NotFoundError is returned when no crop has the slug.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("crop not found by slug: %q", e.Slug)
}

var catalog = []Crop{
	{Name: "Corn", Key: "corn"},
	{Name: "Rice", Key: "rice"},
	{Name: "Tomato", Key: "tomato"},
}

// All returns the crops in the order they're shown on the dashboard.
func All() []Crop {
	return slices.Clone(catalog)
}

func BySlug(s string) (Crop, error) {
	s = slug.Make(s)
	for _, c := range catalog {
		if c.Slug() == s {
			return c, nil
		}
	}

	return Crop{}, &NotFoundError{Slug: s}
}
