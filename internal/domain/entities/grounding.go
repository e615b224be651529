package entities

// Grounding maps a free-text string to a namespaced identifier.
// Several groundings may share the same Text.
type Grounding struct {
	Text      string    `json:"text"`
	Namespace Namespace `json:"namespace"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
}

func (g Grounding) String() string {
	return formatRecord(g.Text, string(g.Namespace), g.ID, g.Name)
}

// Ref is a namespace/identifier pair.
type Ref struct {
	Namespace Namespace `json:"namespace"`
	ID        string    `json:"id"`
}
