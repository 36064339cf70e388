package catalog

import (
	"testing"

	pkgerrors "github.com/Henry881-hack/corries-shop/pkg/errors"
)

func TestByID(t *testing.T) {
	c := Default()

	product, err := c.ByID("feat1")
	if err != nil {
		t.Fatalf("ByID returned error: %v", err)
	}
	if product.Name != "23 Legends Hoodie" || product.Price != "$99.99" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestByIDUnknownProduct(t *testing.T) {
	_, err := Default().ByID("nope")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestByCategory(t *testing.T) {
	sneakers := Default().ByCategory("Sneakers")
	if len(sneakers) != 6 {
		t.Fatalf("expected 6 sneakers, got %d", len(sneakers))
	}
	for _, p := range sneakers {
		if p.Category != "sneakers" {
			t.Fatalf("unexpected category on %q: %q", p.ID, p.Category)
		}
	}
}

func TestSearch(t *testing.T) {
	c := Default()

	hits := c.Search("jordans")
	if len(hits) != 2 {
		t.Fatalf("expected 2 jordans hits, got %d", len(hits))
	}

	// Category text matches too, mirroring the storefront search page.
	if hits := c.Search("new arrivals"); len(hits) != 6 {
		t.Fatalf("expected 6 new-arrival hits, got %d", len(hits))
	}

	if hits := c.Search(""); hits != nil {
		t.Fatalf("expected no hits for empty query, got %d", len(hits))
	}
}
