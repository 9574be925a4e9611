package inventory

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// StateSummary is the aggregate view recorded after every mutation.
type StateSummary struct {
	RecordedAt time.Time
	Warehouses int
	Lines      int
	Packages   int
	Pallets    int
}

// Registry is the arena that owns every known entity, keyed by serial
// number. Back-links held by packages, pallets and lines are resolved through
// it. Entries are never removed; the registry grows as entities are created.
//
// Registry is not safe for concurrent use.
type Registry struct {
	warehouses arena[*Warehouse]
	lines      arena[*Line]
	pallets    arena[*Pallet]
	packages   arena[*Package]
}

func NewRegistry() *Registry {
	return &Registry{
		warehouses: newArena[*Warehouse](),
		lines:      newArena[*Line](),
		pallets:    newArena[*Pallet](),
		packages:   newArena[*Package](),
	}
}

// RegisterWarehouse adds w unless a warehouse with the same serial is known.
// It reports whether w was added.
func (r *Registry) RegisterWarehouse(w *Warehouse) bool {
	if w.Validate() != nil {
		return false
	}
	return r.warehouses.put(w.ID(), w)
}

func (r *Registry) RegisterLine(l *Line) bool {
	if l.Validate() != nil {
		return false
	}
	return r.lines.put(l.ID(), l)
}

func (r *Registry) RegisterPallet(p *Pallet) bool {
	if p.Validate() != nil {
		return false
	}
	return r.pallets.put(p.ID(), p)
}

func (r *Registry) RegisterPackage(p *Package) bool {
	if p.Validate() != nil {
		return false
	}
	return r.packages.put(p.ID(), p)
}

func (r *Registry) Warehouse(id kernel.UUID) (*Warehouse, bool) {
	return r.warehouses.get(id)
}

func (r *Registry) Line(id kernel.UUID) (*Line, bool) {
	return r.lines.get(id)
}

func (r *Registry) Pallet(id kernel.UUID) (*Pallet, bool) {
	return r.pallets.get(id)
}

func (r *Registry) Package(id kernel.UUID) (*Package, bool) {
	return r.packages.get(id)
}

// Warehouses returns all warehouses in registration order.
func (r *Registry) Warehouses() []*Warehouse {
	return r.warehouses.all()
}

func (r *Registry) Lines() []*Line {
	return r.lines.all()
}

func (r *Registry) Pallets() []*Pallet {
	return r.pallets.all()
}

func (r *Registry) Packages() []*Package {
	return r.packages.all()
}

// Summary counts the registered entities.
func (r *Registry) Summary(at time.Time) StateSummary {
	return StateSummary{
		RecordedAt: at,
		Warehouses: r.warehouses.len(),
		Lines:      r.lines.len(),
		Packages:   r.packages.len(),
		Pallets:    r.pallets.len(),
	}
}

// arena is an insertion ordered map.
type arena[T any] struct {
	byID  map[kernel.UUID]T
	order []kernel.UUID
}

func newArena[T any]() arena[T] {
	return arena[T]{byID: make(map[kernel.UUID]T)}
}

func (a *arena[T]) put(id kernel.UUID, item T) bool {
	if _, ok := a.byID[id]; ok {
		return false
	}
	a.byID[id] = item
	a.order = append(a.order, id)
	return true
}

func (a *arena[T]) get(id kernel.UUID) (T, bool) {
	item, ok := a.byID[id]
	return item, ok
}

func (a *arena[T]) all() []T {
	items := make([]T, 0, len(a.order))
	for _, id := range a.order {
		items = append(items, a.byID[id])
	}
	return items
}

func (a *arena[T]) len() int {
	return len(a.order)
}
