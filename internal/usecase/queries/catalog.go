package queries

import (
	"bakery-preorder/internal/domain/order"
)

type CatalogQueries interface {
	ListOfferings() []order.Offering
}

type catalogQueriesImpl struct {
	catalog *order.Catalog
}

func NewCatalogQueries(catalog *order.Catalog) CatalogQueries {
	return &catalogQueriesImpl{catalog: catalog}
}

func (q *catalogQueriesImpl) ListOfferings() []order.Offering {
	return q.catalog.Offerings()
}
