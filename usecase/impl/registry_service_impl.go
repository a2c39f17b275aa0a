package impl

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// RegistryServiceImpl implements RegistryService. All state lives in memory;
// every mutation is written through the settings repository afterwards.
// Persistence failures are surfaced but the in-memory mutation stands, so the
// board stays responsive and the next successful save catches up.
type RegistryServiceImpl struct {
	repo   repository.SettingsRepository
	logger domain.Logger

	mu       sync.Mutex
	builtins []*entity.TimezoneEntry
	customs  []*entity.TimezoneEntry
	removed  map[string]struct{}
}

// NewRegistryService creates a registry seeded with the builtin entries and
// hydrated from previously persisted state. A load failure falls back to the
// defaults; the board must come up even with broken storage.
func NewRegistryService(repo repository.SettingsRepository, logger domain.Logger) usecase.RegistryService {
	r := &RegistryServiceImpl{
		repo:     repo,
		logger:   logger,
		builtins: entity.BuiltinEntries(),
		removed:  make(map[string]struct{}),
	}

	state, err := repo.LoadRegistryState()
	if err != nil {
		logger.Warn(context.Background(), "Failed to load registry state, starting with defaults",
			domain.NewField("error", err.Error()))
		return r
	}
	if state != nil {
		r.applyState(state)
	}
	return r
}

func (r *RegistryServiceImpl) applyState(state *repository.RegistryState) {
	for _, entry := range state.CustomEntries {
		copied := *entry
		copied.Origin = entity.OriginCustom
		r.customs = append(r.customs, &copied)
	}
	for _, id := range state.RemovedBuiltinIDs {
		r.removed[id] = struct{}{}
	}
	for _, builtin := range r.builtins {
		if label, ok := state.Labels[builtin.ID]; ok {
			builtin.DisplayName = label
		}
		if note, ok := state.Notes[builtin.ID]; ok {
			builtin.Note = note
		}
	}
}

// AddCustom appends a custom entry, rejecting zones already tracked by a
// surviving custom entry
func (r *RegistryServiceImpl) AddCustom(input usecase.AddCustomInput) (*entity.TimezoneEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	duplicate := lo.SomeBy(r.customs, func(e *entity.TimezoneEntry) bool {
		return e.IANAZone == input.IANAZone
	})
	if duplicate {
		return nil, domain.ErrDuplicate("custom timezone", input.IANAZone)
	}

	entry, err := entity.NewCustomEntry(input.IANAZone, input.DisplayName, input.FlagGlyph)
	if err != nil {
		return nil, err
	}

	r.customs = append(r.customs, entry)
	if err := r.persistLocked(); err != nil {
		return entry, err
	}
	return entry, nil
}

// RemoveCustom deletes a custom entry permanently
func (r *RegistryServiceImpl) RemoveCustom(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findBuiltin(id) != nil {
		return domain.ErrInvalidOperation("remove", "builtin timezone", "builtins can only be hidden")
	}

	before := len(r.customs)
	r.customs = lo.Reject(r.customs, func(e *entity.TimezoneEntry, _ int) bool {
		return e.ID == id
	})
	if len(r.customs) == before {
		return domain.ErrNotFound("custom timezone", id)
	}
	return r.persistLocked()
}

// HideBuiltin adds the id to the removed set. Calling it again for an
// already-hidden id changes nothing.
func (r *RegistryServiceImpl) HideBuiltin(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findBuiltin(id) == nil {
		return domain.ErrNotFound("builtin timezone", id)
	}
	if _, hidden := r.removed[id]; hidden {
		return nil
	}
	r.removed[id] = struct{}{}
	return r.persistLocked()
}

// RestoreBuiltin removes the id from the removed set. A never-hidden id is a
// no-op.
func (r *RegistryServiceImpl) RestoreBuiltin(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, hidden := r.removed[id]; !hidden {
		return nil
	}
	delete(r.removed, id)
	return r.persistLocked()
}

// ListVisible returns copies of the visible entries: builtins in catalog
// order, then customs in insertion order
func (r *RegistryServiceImpl) ListVisible() []*entity.TimezoneEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	visible := make([]*entity.TimezoneEntry, 0, len(r.builtins)+len(r.customs))
	for _, builtin := range r.builtins {
		if _, hidden := r.removed[builtin.ID]; hidden {
			continue
		}
		copied := *builtin
		visible = append(visible, &copied)
	}
	for _, custom := range r.customs {
		copied := *custom
		visible = append(visible, &copied)
	}
	return visible
}

// SetLabel replaces an entry's display name
func (r *RegistryServiceImpl) SetLabel(id, label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.findAny(id)
	if entry == nil {
		return domain.ErrNotFound("timezone entry", id)
	}
	entry.DisplayName = label
	return r.persistLocked()
}

// SetNote replaces an entry's free-form note
func (r *RegistryServiceImpl) SetNote(id, note string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.findAny(id)
	if entry == nil {
		return domain.ErrNotFound("timezone entry", id)
	}
	entry.Note = note
	return r.persistLocked()
}

func (r *RegistryServiceImpl) findBuiltin(id string) *entity.TimezoneEntry {
	for _, builtin := range r.builtins {
		if builtin.ID == id {
			return builtin
		}
	}
	return nil
}

func (r *RegistryServiceImpl) findAny(id string) *entity.TimezoneEntry {
	if builtin := r.findBuiltin(id); builtin != nil {
		return builtin
	}
	for _, custom := range r.customs {
		if custom.ID == id {
			return custom
		}
	}
	return nil
}

// persistLocked writes the current registry state through the repository.
// Must be called with the mutex held.
func (r *RegistryServiceImpl) persistLocked() error {
	state := &repository.RegistryState{
		CustomEntries:     r.customs,
		RemovedBuiltinIDs: lo.Keys(r.removed),
		Labels:            make(map[string]string),
		Notes:             make(map[string]string),
	}
	sort.Strings(state.RemovedBuiltinIDs)
	for _, builtin := range r.builtins {
		state.Labels[builtin.ID] = builtin.DisplayName
		if builtin.Note != "" {
			state.Notes[builtin.ID] = builtin.Note
		}
	}

	if err := r.repo.SaveRegistryState(state); err != nil {
		r.logger.Warn(context.Background(), "Failed to persist registry state, keeping in-memory change",
			domain.NewField("error", err.Error()))
		return domain.ErrPersistence("registry state", err)
	}
	return nil
}
