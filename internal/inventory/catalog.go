package inventory

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// catalogSource is the subset of ProductService that CatalogLoader requires.
type catalogSource interface {
	FetchProducts(ctx context.Context) ([]Product, error)
	FetchArchivedProducts(ctx context.Context) ([]Product, error)
	FetchTypes(ctx context.Context) ([]ProductType, error)
	FetchBrands(ctx context.Context) ([]Brand, error)
	FetchMaterials(ctx context.Context) ([]Material, error)
}

// Catalog bundles a product listing with id to name lookups for the
// reference data the products refer to.
type Catalog struct {
	Products  []Product
	Archived  bool
	Types     map[int64]string
	Brands    map[int64]string
	Materials map[int64]string
}

func (c *Catalog) TypeName(id *int64) string     { return lookup(c.Types, id) }
func (c *Catalog) BrandName(id *int64) string    { return lookup(c.Brands, id) }
func (c *Catalog) MaterialName(id *int64) string { return lookup(c.Materials, id) }

func lookup(m map[int64]string, id *int64) string {
	if id == nil {
		return ""
	}
	return m[*id]
}

type CatalogLoader struct {
	source catalogSource
}

func NewCatalogLoader(source catalogSource) *CatalogLoader {
	return &CatalogLoader{source: source}
}

// Load fetches the product listing and the three reference lists in
// parallel. The first failure cancels the remaining requests.
func (l *CatalogLoader) Load(ctx context.Context, archived bool) (*Catalog, error) {
	var (
		products  []Product
		types     []ProductType
		brands    []Brand
		materials []Material
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if archived {
			products, err = l.source.FetchArchivedProducts(gctx)
		} else {
			products, err = l.source.FetchProducts(gctx)
		}
		return err
	})
	g.Go(func() error {
		var err error
		types, err = l.source.FetchTypes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		brands, err = l.source.FetchBrands(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		materials, err = l.source.FetchMaterials(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Catalog{
		Products:  products,
		Archived:  archived,
		Types:     make(map[int64]string, len(types)),
		Brands:    make(map[int64]string, len(brands)),
		Materials: make(map[int64]string, len(materials)),
	}
	for _, t := range types {
		c.Types[t.ID] = t.Name
	}
	for _, b := range brands {
		c.Brands[b.ID] = b.Name
	}
	for _, m := range materials {
		c.Materials[m.ID] = m.Name
	}
	return c, nil
}
