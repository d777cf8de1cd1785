package validator

// Registry holds validators in registration order. Order matters: reasons
// appear in the verdict in the order their checks ran.
type Registry struct {
	validators []Validator
	byKey      map[string]Validator
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Validator)}
}

// DefaultRegistry returns the standard BOL to load checks.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(locationValidator{})
	r.Register(weightValidator{})
	r.Register(hazmatValidator{})
	r.Register(poValidator{})
	return r
}

// Register adds a validator to the registry, replacing any with the same key.
func (r *Registry) Register(v Validator) {
	if _, exists := r.byKey[v.RuleKey()]; exists {
		for i := range r.validators {
			if r.validators[i].RuleKey() == v.RuleKey() {
				r.validators[i] = v
			}
		}
	} else {
		r.validators = append(r.validators, v)
	}
	r.byKey[v.RuleKey()] = v
}

// Get returns the validator for a given rule key, or nil if not found.
func (r *Registry) Get(key string) Validator {
	return r.byKey[key]
}

// All returns all registered validators in registration order.
func (r *Registry) All() []Validator {
	out := make([]Validator, len(r.validators))
	copy(out, r.validators)
	return out
}
