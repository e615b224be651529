package entities

// Predicate names a hierarchical link between two terms.
type Predicate string

const (
	PredicateIsA    Predicate = "isa"
	PredicatePartOf Predicate = "partof"
)

// Term is one side of a relationship: a namespaced identifier plus its label.
type Term struct {
	Namespace Namespace `json:"namespace"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
}

// Relationship is a directed subject-predicate-object link from the relations table.
type Relationship struct {
	Subject   Term      `json:"subject"`
	Predicate Predicate `json:"predicate"`
	Object    Term      `json:"object"`
}

// Terms returns subject and object in table order.
func (r Relationship) Terms() [2]Term {
	return [2]Term{r.Subject, r.Object}
}

func (r Relationship) String() string {
	return formatRecord(
		string(r.Subject.Namespace), r.Subject.ID, r.Subject.Name,
		string(r.Predicate),
		string(r.Object.Namespace), r.Object.ID, r.Object.Name,
	)
}
