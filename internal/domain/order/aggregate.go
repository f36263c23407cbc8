package order

// Selection is the committed state of one product control: whether it is
// checked and the quantity the control holds. Quantity is a pointer because
// a missing value is meaningful (a defect, not zero).
type Selection struct {
	Product  string
	Selected bool
	Quantity *int
}

// OrderLine is an immutable snapshot of one selected offering within a
// single aggregation cycle.
type OrderLine struct {
	name      string
	unitPrice Money
	quantity  Quantity
	subtotal  Money
}

func newOrderLine(offering Offering, qty Quantity) OrderLine {
	return OrderLine{
		name:      offering.name,
		unitPrice: offering.unitPrice,
		quantity:  qty,
		subtotal:  offering.unitPrice.Mul(qty.value),
	}
}

func (l OrderLine) Name() string {
	return l.name
}

func (l OrderLine) UnitPrice() Money {
	return l.unitPrice
}

func (l OrderLine) Quantity() Quantity {
	return l.quantity
}

func (l OrderLine) Subtotal() Money {
	return l.subtotal
}

type DefectKind int

const (
	DefectUnknownProduct DefectKind = iota
	DefectMissingQuantity
)

// Defect records a selection the aggregate tolerated (contributing nothing
// to the total) but that validation must not let reach submission.
type Defect struct {
	Product string
	Kind    DefectKind
}

// Aggregate is the full recomputation of lines and total from the current
// selections. Offerings are few, so a total recompute per trigger beats
// incremental bookkeeping.
type Aggregate struct {
	lines   []OrderLine
	total   Money
	defects []Defect
}

// Aggregate derives order lines, in selection order, from the committed
// control state. Unchecked selections contribute nothing regardless of
// their stored quantity. Present quantities are clamped to [1,99]; missing
// ones and unknown products are recorded as defects.
func (c *Catalog) Aggregate(selections []Selection) Aggregate {
	var agg Aggregate
	for _, sel := range selections {
		if !sel.Selected {
			continue
		}
		offering, ok := c.Find(sel.Product)
		if !ok {
			agg.defects = append(agg.defects, Defect{Product: sel.Product, Kind: DefectUnknownProduct})
			continue
		}
		if sel.Quantity == nil {
			agg.defects = append(agg.defects, Defect{Product: sel.Product, Kind: DefectMissingQuantity})
			continue
		}
		line := newOrderLine(offering, ClampQuantity(*sel.Quantity))
		agg.lines = append(agg.lines, line)
		agg.total = agg.total.Add(line.subtotal)
	}
	return agg
}

func (a Aggregate) Lines() []OrderLine {
	out := make([]OrderLine, len(a.lines))
	copy(out, a.lines)
	return out
}

func (a Aggregate) Total() Money {
	return a.total
}

func (a Aggregate) Defects() []Defect {
	return a.defects
}
