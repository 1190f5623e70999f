package event

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var idPrefixPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,9}$`)

type Registry struct {
	events map[Kind]Event
	order  []Kind
}

func NewRegistry(events []Event) (*Registry, error) {
	r := &Registry{events: make(map[Kind]Event, len(events))}
	for _, e := range events {
		if err := validate(e); err != nil {
			return nil, err
		}
		if _, dup := r.events[e.Kind]; dup {
			return nil, fmt.Errorf("event %q defined twice", e.Kind)
		}
		r.events[e.Kind] = e
		r.order = append(r.order, e.Kind)
	}
	if len(r.order) == 0 {
		return nil, fmt.Errorf("event registry is empty")
	}
	return r, nil
}

func validate(e Event) error {
	if !e.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Kind)
	}
	if !idPrefixPattern.MatchString(e.IDPrefix) {
		return fmt.Errorf("event %q: id prefix %q must be 2-10 uppercase alphanumerics", e.Kind, e.IDPrefix)
	}
	if e.MaxGroupMembers < 0 {
		return fmt.Errorf("event %q: maxGroupMembers must not be negative", e.Kind)
	}
	if !e.IsSlotted() {
		if e.Capacity <= 0 {
			return fmt.Errorf("event %q: capacity must be positive", e.Kind)
		}
		return nil
	}
	if e.Capacity != 0 {
		return fmt.Errorf("event %q: capacity must be set per slot, not on a slotted event", e.Kind)
	}
	seen := make(map[string]struct{}, len(e.Slots))
	for _, s := range e.Slots {
		if s.Label == "" {
			return fmt.Errorf("event %q: slot label must not be empty", e.Kind)
		}
		if _, dup := seen[s.Label]; dup {
			return fmt.Errorf("event %q: slot %q defined twice", e.Kind, s.Label)
		}
		seen[s.Label] = struct{}{}
		if s.Capacity <= 0 {
			return fmt.Errorf("event %q: slot %q capacity must be positive", e.Kind, s.Label)
		}
	}
	return nil
}

func (r *Registry) Get(kind Kind) (Event, error) {
	e, ok := r.events[kind]
	if !ok {
		return Event{}, ErrUnknownEvent
	}
	return e, nil
}

// Lookup parses and resolves a raw event kind in one step.
func (r *Registry) Lookup(raw string) (Event, error) {
	kind, err := ParseKind(raw)
	if err != nil {
		return Event{}, err
	}
	return r.Get(kind)
}

func (r *Registry) All() []Event {
	out := make([]Event, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.events[k])
	}
	return out
}

type registryFile struct {
	Events []Event `yaml:"events"`
}

// LoadRegistry reads the YAML registry at path, or returns the built-in registry when path is empty.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read events file: %w", err)
	}
	return ParseRegistry(raw)
}

func ParseRegistry(raw []byte) (*Registry, error) {
	var f registryFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode events file: %w", err)
	}
	return NewRegistry(f.Events)
}

func DefaultRegistry() *Registry {
	r, err := NewRegistry([]Event{
		{
			Kind:     KindFacilityTourA,
			Title:    "施設見学会 A",
			IDPrefix: "TOURA",
			Slots: []Slot{
				{Label: "10:00-11:30", Capacity: 20},
				{Label: "13:30-15:00", Capacity: 20},
			},
		},
		{
			Kind:     KindFacilityTourB,
			Title:    "施設見学会 B",
			IDPrefix: "TOURB",
			Capacity: 30,
		},
		{
			Kind:            KindGolfOuting,
			Title:           "チャリティゴルフコンペ",
			IDPrefix:        "GOLF",
			Capacity:        120,
			Group:           true,
			MaxGroupMembers: 3,
		},
	})
	if err != nil {
		panic("invalid built-in event registry: " + err.Error())
	}
	return r
}
