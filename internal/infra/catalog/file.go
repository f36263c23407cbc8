package catalog

import (
	"encoding/json"
	"os"

	"bakery-preorder/internal/domain/order"
	"bakery-preorder/internal/pkg/config"
	"bakery-preorder/internal/pkg/errs"
)

type offeringRecord struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Load reads the static product configuration once at startup. The file
// order is the form's control order.
func Load(cfg config.CatalogConfig) (*order.Catalog, error) {
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read catalog file")
	}

	var records []offeringRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errs.Wrap(err, "failed to parse catalog file")
	}

	offerings := make([]order.Offering, 0, len(records))
	for _, rec := range records {
		offering, err := order.NewOffering(rec.Name, rec.Price)
		if err != nil {
			return nil, errs.Wrap(err, "invalid offering in catalog file")
		}
		offerings = append(offerings, offering)
	}

	return order.NewCatalog(offerings)
}
