package services

import (
	"sync"

	"uvicorn-shop/internal/models"
	"uvicorn-shop/internal/search"
	"uvicorn-shop/internal/sorting"
)

// CatalogService holds the priced catalog and its prefix index. The index is
// rebuilt whenever the catalog snapshot is replaced, never patched in place.
type CatalogService struct {
	mu      sync.RWMutex
	byID    map[string]models.Product
	byName  map[string]models.Product
	ordered []models.Product
	index   *search.PrefixIndex
}

func NewCatalogService() *CatalogService {
	s := &CatalogService{}
	s.Replace(nil)
	return s
}

// Replace swaps in a new catalog snapshot and rebuilds the prefix index.
func (s *CatalogService) Replace(products []models.Product) {
	byID := make(map[string]models.Product, len(products))
	byName := make(map[string]models.Product, len(products))
	names := make([]string, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		byName[p.Name] = p
		names = append(names, p.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = byID
	s.byName = byName
	s.ordered = append([]models.Product(nil), products...)
	s.index = search.BuildPrefixIndex(names)
}

func (s *CatalogService) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.ordered...)
}

func (s *CatalogService) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// SearchPrefix resolves trie matches back to products. Blank queries return
// nothing by convention.
func (s *CatalogService) SearchPrefix(q string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := s.index.StartsWith(q)
	out := make([]models.Product, 0, len(names))
	for _, name := range names {
		if p, ok := s.byName[name]; ok {
			out = append(out, p)
		}
	}
	return out
}

// SortedByPrice returns the catalog ordered by unit price.
func (s *CatalogService) SortedByPrice(ascending bool) []models.Product {
	s.mu.RLock()
	snapshot := s.ordered
	s.mu.RUnlock()
	return sorting.ByPrice(snapshot, ascending)
}

// SeedProducts is the static storefront catalog. Prices are in paise.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: "uv-kurta-01", Name: "Banarasi Silk Kurta", Description: "Handwoven silk kurta with zari detailing", Price: 249900, Image: "/products/kurta.jpg"},
		{ID: "uv-diya-02", Name: "Brass Diya Set", Description: "Set of six hand-polished brass diyas", Price: 89900, Image: "/products/diya.jpg"},
		{ID: "uv-saree-03", Name: "Kanjivaram Saree", Description: "Pure mulberry silk saree, temple border", Price: 749900, Image: "/products/saree.jpg"},
		{ID: "uv-box-04", Name: "Dry Fruit Gift Box", Description: "Almonds, cashews and pistachios, 750g", Price: 129900, Image: "/products/giftbox.jpg"},
		{ID: "uv-lamp-05", Name: "Terracotta Table Lamp", Description: "Hand-painted terracotta lamp with jute shade", Price: 159900, Image: "/products/lamp.jpg"},
		{ID: "uv-shawl-06", Name: "Pashmina Shawl", Description: "Fine-count pashmina, natural dye", Price: 429900, Image: "/products/shawl.jpg"},
		{ID: "uv-rangoli-07", Name: "Rangoli Stencil Kit", Description: "Twelve reusable stencils with colour powders", Price: 49900, Image: "/products/rangoli.jpg"},
		{ID: "uv-chai-08", Name: "Masala Chai Sampler", Description: "Four single-estate blends, 100g each", Price: 69900, Image: "/products/chai.jpg"},
	}
}
