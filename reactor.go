package draft

// ReactorRegistry tracks which entities depend on which others, keyed by
// caller-assigned ids. Leaders use it to find the annotation entity they
// point at.
type ReactorRegistry struct {
	dependents map[string]map[string]Entity
}

// NewReactorRegistry returns an empty registry.
func NewReactorRegistry() *ReactorRegistry {
	return &ReactorRegistry{dependents: make(map[string]map[string]Entity)}
}

// Attach records that dependent (under dependentID) reacts to changes of the
// entity identified by targetID. Attaching the same pair twice is a no-op.
func (r *ReactorRegistry) Attach(targetID, dependentID string, dependent Entity) {
	deps, ok := r.dependents[targetID]
	if !ok {
		deps = make(map[string]Entity)
		r.dependents[targetID] = deps
	}
	deps[dependentID] = dependent
}

// Detach removes a previously attached dependency. Detaching a pair that was
// never attached is a no-op.
func (r *ReactorRegistry) Detach(targetID, dependentID string) {
	deps, ok := r.dependents[targetID]
	if !ok {
		return
	}
	delete(deps, dependentID)
	if len(deps) == 0 {
		delete(r.dependents, targetID)
	}
}

// Dependents returns the entities attached to targetID. The result is a
// fresh slice and may be mutated by the caller.
func (r *ReactorRegistry) Dependents(targetID string) []Entity {
	deps := r.dependents[targetID]
	if len(deps) == 0 {
		return nil
	}
	out := make([]Entity, 0, len(deps))
	for _, e := range deps {
		out = append(out, e)
	}
	return out
}
