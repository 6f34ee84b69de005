package plan

// PlanEntry is the read-time shape of one plan row, joined with the food
// item it references.
type PlanEntry struct {
	ID           uint
	Date         string
	TargetCost   float64
	FoodItemID   uint
	FoodItemName string
	FoodItemCost float64
}

// OrderPlan is the derived aggregate of all entries sharing one date. It
// is never stored as a row; by construction it has at least one entry and
// all entries carry the same target cost.
type OrderPlan struct {
	date       string
	targetCost float64
	entries    []PlanEntry
}

// NewOrderPlan builds the plan view for one date from its joined entries.
func NewOrderPlan(date string, entries []PlanEntry) (*OrderPlan, error) {
	if !ValidDate(date) {
		return nil, ErrInvalidDate
	}
	if len(entries) == 0 {
		return nil, ErrEmptyPlan
	}

	return &OrderPlan{
		date:       date,
		targetCost: entries[0].TargetCost,
		entries:    entries,
	}, nil
}

// Date returns the plan date
func (p *OrderPlan) Date() string {
	return p.date
}

// TargetCost returns the budget in force when the plan was saved
func (p *OrderPlan) TargetCost() float64 {
	return p.targetCost
}

// Entries returns the joined plan entries, ordered by food item name.
func (p *OrderPlan) Entries() []PlanEntry {
	return p.entries
}

// ActualCost returns the sum of the entries' food item costs. An absent
// cost counts as zero.
func (p *OrderPlan) ActualCost() float64 {
	var total float64
	for _, e := range p.entries {
		total += e.FoodItemCost
	}
	return total
}

// Remaining returns the unspent budget. A negative value means the stored
// plan exceeds its budget; it is surfaced, never clamped.
func (p *OrderPlan) Remaining() float64 {
	return p.targetCost - p.ActualCost()
}
