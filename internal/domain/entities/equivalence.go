package entities

// Equivalence asserts that an external database entry denotes a FamPlex entity.
type Equivalence struct {
	Namespace Namespace `json:"namespace"`
	ID        string    `json:"id"`
	FplxID    string    `json:"fplx_id"`
	FplxName  string    `json:"fplx_name"`
}

func (e Equivalence) String() string {
	return formatRecord(string(e.Namespace), e.ID, e.FplxID, e.FplxName)
}
