// Package services implements the FamPlex integrity checks.
package services

import (
	"github.com/famplex/famplex/internal/domain/entities"
)

// TextGrounding holds the groundings of one text, one id per namespace.
// When a namespace repeats, the last row wins; namespaces keep first-seen order.
type TextGrounding struct {
	Text string
	Refs []entities.Ref
}

// Get returns the id grounded in ns.
func (t *TextGrounding) Get(ns entities.Namespace) (string, bool) {
	for _, ref := range t.Refs {
		if ref.Namespace == ns {
			return ref.ID, true
		}
	}
	return "", false
}

func (t *TextGrounding) set(ns entities.Namespace, id string) {
	for i := range t.Refs {
		if t.Refs[i].Namespace == ns {
			t.Refs[i].ID = id
			return
		}
	}
	t.Refs = append(t.Refs, entities.Ref{Namespace: ns, ID: id})
}

// TextNamespace keys the multi-valued grounding index.
type TextNamespace struct {
	Text      string
	Namespace entities.Namespace
}

// Resources is the loaded state shared by every check of a run.
// It is built once and treated as read-only afterwards.
type Resources struct {
	Entities      []entities.Entity
	Relationships []entities.Relationship
	Equivalences  []entities.Equivalence
	Groundings    []entities.Grounding

	// LoadErrors are positional problems found while reading the tables.
	LoadErrors []error

	entityNames    map[string]string
	textGroundings []*TextGrounding
	textIndex      map[string]*TextGrounding
	multiKeys      []TextNamespace
	multi          map[TextNamespace][]entities.Grounding
}

// NewResources builds the cross-reference indices over the loaded tables.
func NewResources(
	ents []entities.Entity,
	rels []entities.Relationship,
	eqs []entities.Equivalence,
	gms []entities.Grounding,
	loadErrs []error,
) *Resources {
	res := &Resources{
		Entities:      ents,
		Relationships: rels,
		Equivalences:  eqs,
		Groundings:    gms,
		LoadErrors:    loadErrs,
		entityNames:   make(map[string]string, len(ents)),
		textIndex:     make(map[string]*TextGrounding),
		multi:         make(map[TextNamespace][]entities.Grounding),
	}

	for _, e := range ents {
		res.entityNames[e.ID] = e.Name
	}

	for _, g := range gms {
		tg, ok := res.textIndex[g.Text]
		if !ok {
			tg = &TextGrounding{Text: g.Text}
			res.textIndex[g.Text] = tg
			res.textGroundings = append(res.textGroundings, tg)
		}
		tg.set(g.Namespace, g.ID)

		key := TextNamespace{Text: g.Text, Namespace: g.Namespace}
		if _, ok := res.multi[key]; !ok {
			res.multiKeys = append(res.multiKeys, key)
		}
		res.multi[key] = append(res.multi[key], g)
	}

	return res
}

// EntityName returns the name of a declared FamPlex id.
func (r *Resources) EntityName(id string) (string, bool) {
	name, ok := r.entityNames[id]
	return name, ok
}

// IsDeclared reports whether id is a FamPlex entity id.
func (r *Resources) IsDeclared(id string) bool {
	_, ok := r.entityNames[id]
	return ok
}

// TextGroundings returns the per-text grounding view in first-seen text order.
func (r *Resources) TextGroundings() []*TextGrounding {
	return r.textGroundings
}

// GroundingsFor returns the text's grounding view.
func (r *Resources) GroundingsFor(text string) (*TextGrounding, bool) {
	tg, ok := r.textIndex[text]
	return tg, ok
}

// GroundingRows returns every row grounding text in ns, in table order.
func (r *Resources) GroundingRows(text string, ns entities.Namespace) []entities.Grounding {
	return r.multi[TextNamespace{Text: text, Namespace: ns}]
}

// TextNamespaces returns the keys of the multi-valued index in first-seen order.
func (r *Resources) TextNamespaces() []TextNamespace {
	return r.multiKeys
}

// GroundedIDs returns the distinct ids grounded in ns across every grounding
// row, in first-seen order.
func (r *Resources) GroundedIDs(ns entities.Namespace) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, g := range r.Groundings {
		if g.Namespace != ns || seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		ids = append(ids, g.ID)
	}
	return ids
}
