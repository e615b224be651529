package services

import (
	"context"
	"fmt"
)

// Duplicate is a record seen more than once, with its total frequency.
type Duplicate[T comparable] struct {
	Record T
	Count  int
}

// FindDuplicates returns every record occurring more than once, in order of
// first occurrence.
func FindDuplicates[T comparable](records []T) []Duplicate[T] {
	counts := make(map[T]int, len(records))
	var order []T
	for _, rec := range records {
		if counts[rec] == 0 {
			order = append(order, rec)
		}
		counts[rec]++
	}

	var dups []Duplicate[T]
	for _, rec := range order {
		if n := counts[rec]; n > 1 {
			dups = append(dups, Duplicate[T]{Record: rec, Count: n})
		}
	}
	return dups
}

type record interface {
	comparable
	fmt.Stringer
}

// reportDuplicates prints one error per duplicated record and reports whether any were found.
func reportDuplicates[T record](rep *Report, records []T, label string) bool {
	rep.Section("Checking for duplicate " + label)
	dups := FindDuplicates(records)
	for _, d := range dups {
		rep.Errorf(RuleDuplicates, "Duplicate %s in %s (%d occurrences).", d.Record, label, d.Count)
	}
	return len(dups) > 0
}

// CheckTableRows reports rows the loader could not use.
func CheckTableRows(_ context.Context, res *Resources, rep *Report) error {
	rep.Section("Checking table rows")
	for _, err := range res.LoadErrors {
		rep.Errorf(RuleRows, "%s", err)
	}
	return nil
}

// CheckDuplicateRows flags repeated rows in each of the four tables.
func CheckDuplicateRows(_ context.Context, res *Resources, rep *Report) error {
	reportDuplicates(rep, res.Entities, "entities")
	reportDuplicates(rep, res.Relationships, "relationships")
	reportDuplicates(rep, res.Equivalences, "equivalences")
	reportDuplicates(rep, res.Groundings, "groundings")
	return nil
}

// CheckEntityUniqueness flags entity ids and names declared more than once.
func CheckEntityUniqueness(_ context.Context, res *Resources, rep *Report) error {
	rep.Section("Checking for reused entity IDs and names")

	ids := make([]string, len(res.Entities))
	names := make([]string, len(res.Entities))
	for i, e := range res.Entities {
		ids[i] = e.ID
		names[i] = e.Name
	}

	for _, d := range FindDuplicates(ids) {
		rep.Errorf(RuleEntityIdentity, "Entity ID %s is declared %d times.", d.Record, d.Count)
	}
	for _, d := range FindDuplicates(names) {
		rep.Errorf(RuleEntityIdentity, "Entity name %s is declared %d times.", d.Record, d.Count)
	}
	return nil
}

// CheckDuplicateEquivalences lists repeated equivalence rows under a single heading.
func CheckDuplicateEquivalences(_ context.Context, res *Resources, rep *Report) error {
	rep.Section("Checking for duplicate equivalences")
	dups := FindDuplicates(res.Equivalences)
	if len(dups) == 0 {
		return nil
	}
	rep.Errorf(RuleDuplicateEquivalent, "Duplicate equivalences found:")
	for _, d := range dups {
		rep.Printf("%s", d.Record)
	}
	return nil
}
