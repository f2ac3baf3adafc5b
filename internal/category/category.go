package category

import (
	"fmt"
	"strings"
)

// Category selects the tagging model, the prompt template and the
// disclaimer attached to a generated answer.
type Category string

const (
	General Category = "general"
	Medical Category = "medical"
	Product Category = "product"
)

// Parse converts user input into a Category. Matching is
// case-insensitive; an empty string defaults to General.
func Parse(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "general":
		return General, nil
	case "medical":
		return Medical, nil
	case "product":
		return Product, nil
	default:
		return "", fmt.Errorf("unknown category %q (want general, medical or product)", s)
	}
}

// Disclaimer returns the static caveat shown alongside a generated
// answer. General analysis carries none.
func (c Category) Disclaimer() string {
	switch c {
	case Medical:
		return "This is not medical advice - consult a doctor for diagnosis"
	case Product:
		return "Price estimates are approximate"
	default:
		return ""
	}
}

// Guide returns the short description of what the category is meant
// for, served by the categories endpoint.
func (c Category) Guide() string {
	switch c {
	case Medical:
		return "Skin conditions, X-rays, scans"
	case Product:
		return "Consumer goods, electronics, clothing"
	default:
		return "Landscapes, objects, animals"
	}
}

// All lists the supported categories in display order.
func All() []Category {
	return []Category{General, Medical, Product}
}
