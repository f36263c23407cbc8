package order

import "errors"

var (
	ErrEmptyCatalog      = errors.New("catalog has no offerings")
	ErrDuplicateOffering = errors.New("duplicate offering name")
	ErrEmptyOfferingName = errors.New("offering name is required")
)

// Offering is one purchasable product shown on the form with a togglable
// selection and a bounded quantity.
type Offering struct {
	name      string
	unitPrice Money
}

func NewOffering(name string, priceYen int64) (Offering, error) {
	if name == "" {
		return Offering{}, ErrEmptyOfferingName
	}
	price, err := NewMoney(priceYen)
	if err != nil {
		return Offering{}, err
	}
	return Offering{name: name, unitPrice: price}, nil
}

func (o Offering) Name() string {
	return o.name
}

func (o Offering) UnitPrice() Money {
	return o.unitPrice
}

// Catalog is the static product configuration, loaded once at startup.
// The offering order is the form's control order.
type Catalog struct {
	offerings []Offering
	index     map[string]int
}

func NewCatalog(offerings []Offering) (*Catalog, error) {
	if len(offerings) == 0 {
		return nil, ErrEmptyCatalog
	}
	index := make(map[string]int, len(offerings))
	for i, o := range offerings {
		if _, ok := index[o.name]; ok {
			return nil, ErrDuplicateOffering
		}
		index[o.name] = i
	}
	return &Catalog{offerings: offerings, index: index}, nil
}

func (c *Catalog) Offerings() []Offering {
	out := make([]Offering, len(c.offerings))
	copy(out, c.offerings)
	return out
}

func (c *Catalog) Find(name string) (Offering, bool) {
	i, ok := c.index[name]
	if !ok {
		return Offering{}, false
	}
	return c.offerings[i], true
}
