package plan

import (
	"context"
	"fmt"
	"sort"

	"platewise/internal/domain/catalog"
)

// Refusal is a normal control-flow outcome of the budget admissibility
// rule and of the commit preconditions. It is not an error: a refused
// selection simply is not applied.
type Refusal int

const (
	// RefusalNone means the action was admissible
	RefusalNone Refusal = iota
	// RefusalBudgetUnset means no positive budget has been set
	RefusalBudgetUnset
	// RefusalNothingSelected means a commit was attempted with an empty
	// selection
	RefusalNothingSelected
	// RefusalOverBudget means the action would push the selection total
	// past the budget
	RefusalOverBudget
)

// OK reports whether the action was admitted.
func (r Refusal) OK() bool {
	return r == RefusalNone
}

func (r Refusal) String() string {
	switch r {
	case RefusalNone:
		return "ok"
	case RefusalBudgetUnset:
		return "budget required"
	case RefusalNothingSelected:
		return "no items selected"
	case RefusalOverBudget:
		return "over budget"
	default:
		return fmt.Sprintf("refusal(%d)", int(r))
	}
}

// ConfirmFunc asks the collaborator whether the plan for an already
// populated date may be replaced.
type ConfirmFunc func(date string) bool

// Builder carries the state of one plan-construction session: the date,
// the target budget, a catalog snapshot, and the selected item set. All
// state lives in memory until Commit; abandoning the session persists
// nothing.
type Builder struct {
	repo       Repository
	date       string
	targetCost float64
	items      map[uint]*catalog.FoodItem
	selected   map[uint]bool
}

// NewBuilder starts a plan-construction session over a catalog snapshot.
// The date defaults to today and the budget starts unset.
func NewBuilder(items []*catalog.FoodItem, repo Repository) *Builder {
	byID := make(map[uint]*catalog.FoodItem, len(items))
	for _, item := range items {
		if item != nil && item.ID() != 0 {
			byID[item.ID()] = item
		}
	}
	return &Builder{
		repo:     repo,
		date:     Today(),
		items:    byID,
		selected: make(map[uint]bool),
	}
}

// Date returns the session date
func (b *Builder) Date() string {
	return b.date
}

// TargetCost returns the session budget, 0 meaning unset
func (b *Builder) TargetCost() float64 {
	return b.targetCost
}

// IsSelected reports whether the item is currently selected
func (b *Builder) IsSelected(id uint) bool {
	return b.selected[id]
}

// SelectedIDs returns the selected item IDs ordered by item name, with the
// ID as a tiebreaker, so commits persist entries deterministically.
func (b *Builder) SelectedIDs() []uint {
	ids := make([]uint, 0, len(b.selected))
	for id := range b.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, z := b.items[ids[i]], b.items[ids[j]]
		if a.Name() != z.Name() {
			return a.Name() < z.Name()
		}
		return ids[i] < ids[j]
	})
	return ids
}

// SelectedTotal returns the summed cost of the selected items
func (b *Builder) SelectedTotal() float64 {
	var total float64
	for id := range b.selected {
		total += b.items[id].Cost()
	}
	return total
}

// Remaining returns the budget left for further selections
func (b *Builder) Remaining() float64 {
	return b.targetCost - b.SelectedTotal()
}

// CanSelect reports whether selecting the item would be admissible without
// applying it. Selecting an already-selected item is a no-op and always
// admissible. The comparison is a tolerance-free <=; an exact tie with the
// budget is admissible.
func (b *Builder) CanSelect(id uint) (Refusal, error) {
	item, ok := b.items[id]
	if !ok {
		return RefusalNone, ErrItemNotInCatalog
	}
	if b.selected[id] {
		return RefusalNone, nil
	}
	if b.targetCost <= 0 {
		return RefusalBudgetUnset, nil
	}
	if b.SelectedTotal()+item.Cost() > b.targetCost {
		return RefusalOverBudget, nil
	}
	return RefusalNone, nil
}

// Select applies the admissibility rule and selects the item when admitted.
// A refused selection is reported, not applied.
func (b *Builder) Select(id uint) (Refusal, error) {
	refusal, err := b.CanSelect(id)
	if err != nil {
		return RefusalNone, err
	}
	if !refusal.OK() {
		return refusal, nil
	}
	b.selected[id] = true
	return RefusalNone, nil
}

// Deselect removes the item from the selection. An already-selected item
// may always be deselected.
func (b *Builder) Deselect(id uint) {
	delete(b.selected, id)
}

// SetBudget changes the target cost. When the current selection total
// exceeds the new budget the entire selection clears: the user reselects
// rather than the builder choosing which items to drop. The cleared result
// reports whether that happened.
func (b *Builder) SetBudget(v float64) (cleared bool) {
	b.targetCost = v
	if b.SelectedTotal() > v {
		b.selected = make(map[uint]bool)
		return true
	}
	return false
}

// SetDate moves the session to a new date. When a plan already exists for
// that date the confirm collaborator must approve the replacement;
// otherwise the previous date is retained and adopted is false.
func (b *Builder) SetDate(ctx context.Context, date string, confirm ConfirmFunc) (adopted bool, err error) {
	if !ValidDate(date) {
		return false, ErrInvalidDate
	}

	exists, err := b.repo.HasEntriesForDate(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to check existing plan: %w", err)
	}
	if exists && (confirm == nil || !confirm(date)) {
		return false, nil
	}

	b.date = date
	return true, nil
}

// Commit validates the session and atomically replaces the plan for the
// session date. Preconditions are checked in order, each with its own
// refusal: budget set, selection non-empty, and total within budget. The
// last check should be unreachable given the per-selection rule but is
// re-validated before anything is persisted.
func (b *Builder) Commit(ctx context.Context) (Refusal, error) {
	if b.targetCost <= 0 {
		return RefusalBudgetUnset, nil
	}
	if len(b.selected) == 0 {
		return RefusalNothingSelected, nil
	}
	if b.SelectedTotal() > b.targetCost {
		return RefusalOverBudget, nil
	}

	entries := make([]*OrderEntry, 0, len(b.selected))
	for _, id := range b.SelectedIDs() {
		entry, err := NewOrderEntry(b.date, b.targetCost, id)
		if err != nil {
			return RefusalNone, fmt.Errorf("failed to build order entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := b.repo.Replace(ctx, b.date, entries); err != nil {
		return RefusalNone, fmt.Errorf("failed to replace plan for %s: %w", b.date, err)
	}

	return RefusalNone, nil
}
