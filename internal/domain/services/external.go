package services

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/famplex/famplex/internal/domain/entities"
	"github.com/famplex/famplex/internal/domain/ports"
	"github.com/famplex/famplex/internal/infrastructure/logging"
)

// DefaultPubChemConcurrency caps in-flight PubChem lookups.
const DefaultPubChemConcurrency = 4

// ExternalDeps are the optional collaborators of the external checks.
type ExternalDeps struct {
	HGNC    ports.Capability[ports.HGNCResolver]
	ChEBI   ports.Capability[ports.ChEBIIndex]
	PubChem ports.Capability[ports.PubChemClient]

	// Cache is optional. When set, HGNC and PubChem outcomes are read from and
	// written to it.
	Cache ports.LookupCache

	PubChemConcurrency int
	Logger             *log.Logger
}

// ExternalValidator checks identifiers against HGNC, ChEBI and PubChem.
type ExternalValidator struct {
	deps    ExternalDeps
	logger  *log.Logger
	symbols map[string]symbolLookup
	now     func() time.Time
}

type symbolLookup struct {
	symbol string
	found  bool
}

type compoundOutcome struct {
	cid   string
	found bool
	err   error
}

// NewExternalValidator creates a validator over the probed dependencies.
func NewExternalValidator(deps ExternalDeps) *ExternalValidator {
	if deps.PubChemConcurrency <= 0 {
		deps.PubChemConcurrency = DefaultPubChemConcurrency
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &ExternalValidator{
		deps:    deps,
		logger:  logger,
		symbols: make(map[string]symbolLookup),
		now:     time.Now,
	}
}

// CheckHGNCRelations verifies HGNC terms in the relations table.
func (v *ExternalValidator) CheckHGNCRelations(ctx context.Context, res *Resources, rep *Report) error {
	resolver, ok := v.deps.HGNC.Get()
	if !ok {
		rep.Skip(RuleHGNCRelations, "HGNC check for relationships could not be performed: "+v.deps.HGNC.Reason())
		return nil
	}

	rep.Section("Checking for invalid HGNC IDs in relationships file")
	for _, rel := range res.Relationships {
		for _, term := range rel.Terms() {
			if term.Namespace != entities.NamespaceHGNC {
				continue
			}
			symbol, found, err := v.lookupSymbol(ctx, resolver, term.ID)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				rep.Warnf(RuleHGNC, "HGNC lookup for %s failed: %v", term.ID, err)
				continue
			}
			if !found {
				rep.Errorf(RuleHGNC, "ID %s referenced in relations is not a valid HGNC ID.", term.ID)
				continue
			}
			if term.Name != symbol {
				rep.Errorf(RuleHGNC, "HGNC %s symbol out of sync. %s should be %s", term.ID, term.Name, symbol)
			}
		}
	}
	return nil
}

// CheckHGNCGroundings verifies HGNC ids in the grounding map.
func (v *ExternalValidator) CheckHGNCGroundings(ctx context.Context, res *Resources, rep *Report) error {
	resolver, ok := v.deps.HGNC.Get()
	if !ok {
		rep.Skip(RuleHGNCGroundings, "HGNC check for grounding map could not be performed: "+v.deps.HGNC.Reason())
		return nil
	}

	rep.Section("Checking for invalid HGNC IDs in grounding map")
	seen := make(map[entities.Grounding]bool)
	for _, g := range res.Groundings {
		if g.Namespace != entities.NamespaceHGNC {
			continue
		}
		key := entities.Grounding{Namespace: g.Namespace, ID: g.ID, Name: g.Name}
		if seen[key] {
			continue
		}
		seen[key] = true

		symbol, found, err := v.lookupSymbol(ctx, resolver, g.ID)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			rep.Warnf(RuleHGNC, "HGNC lookup for %s failed: %v", g.ID, err)
			continue
		}
		if !found {
			rep.Errorf(RuleHGNC, "ID %s in grounding map is not a valid HGNC ID.", g.ID)
			continue
		}
		if g.Name != "" && g.Name != symbol {
			rep.Errorf(RuleHGNC, "HGNC %s symbol out of sync in grounding map. %s should be %s", g.ID, g.Name, symbol)
		}
	}
	return nil
}

// CheckChEBIIDs verifies CHEBI groundings against the local compound list.
// Misses are advisory.
func (v *ExternalValidator) CheckChEBIIDs(_ context.Context, res *Resources, rep *Report) error {
	index, ok := v.deps.ChEBI.Get()
	if !ok {
		rep.Skip(RuleChEBI, "ChEBI ID check could not be performed: "+v.deps.ChEBI.Reason())
		return nil
	}

	rep.Section("Checking for invalid ChEBI IDs in grounding map")
	for _, id := range res.GroundedIDs(entities.NamespaceCHEBI) {
		if !index.Contains(id) {
			rep.Advisoryf(RuleChEBI, "ID %s in grounding map is not a valid CHEBI ID.", id)
		}
	}
	return nil
}

// CheckPubChemIDs queries every distinct PUBCHEM id with a bounded fan-out.
// A failed lookup is a warning for that id and never stops the batch.
func (v *ExternalValidator) CheckPubChemIDs(ctx context.Context, res *Resources, rep *Report) error {
	client, ok := v.deps.PubChem.Get()
	if !ok {
		rep.Skip(RulePubChem, "PubChem ID check could not be performed: "+v.deps.PubChem.Reason())
		return nil
	}

	rep.Section("Checking for invalid PUBCHEM CIDs in grounding map")

	cids := res.GroundedIDs(entities.NamespacePUBCHEM)
	slices.Sort(cids)
	outcomes := make([]compoundOutcome, len(cids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.deps.PubChemConcurrency)
	for i, cid := range cids {
		g.Go(func() error {
			found, err := v.lookupCompound(gctx, client, cid)
			outcomes[i] = compoundOutcome{cid: cid, found: found, err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	for _, o := range outcomes {
		var status *ports.StatusError
		switch {
		case errors.As(o.err, &status):
			rep.Advisoryf(RulePubChem, "ID %s in grounding map could not be validated: PubChem returned HTTP %d.", o.cid, status.Code)
		case o.err != nil:
			rep.Warnf(RulePubChem, "PubChem lookup for %s failed: %v", o.cid, o.err)
		case !o.found:
			rep.Advisoryf(RulePubChem, "ID %s in grounding map is not a valid PUBCHEM ID.", o.cid)
		}
	}
	v.logger.Debug("pubchem check finished", "cids", len(cids))
	return nil
}

// lookupSymbol resolves an HGNC id once per run, consulting the persistent cache first.
func (v *ExternalValidator) lookupSymbol(ctx context.Context, resolver ports.HGNCResolver, id string) (string, bool, error) {
	if hit, ok := v.symbols[id]; ok {
		return hit.symbol, hit.found, nil
	}

	if entry, ok := v.cacheGet(ctx, entities.NamespaceHGNC, id); ok {
		v.symbols[id] = symbolLookup{symbol: entry.Label, found: entry.Found}
		return entry.Label, entry.Found, nil
	}

	symbol, err := resolver.Symbol(ctx, id)
	found := err == nil
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return "", false, err
	}

	v.symbols[id] = symbolLookup{symbol: symbol, found: found}
	v.cachePut(ctx, ports.LookupEntry{Namespace: entities.NamespaceHGNC, ID: id, Found: found, Label: symbol})
	return symbol, found, nil
}

// lookupCompound is called concurrently; the cache implementation must be safe for that.
func (v *ExternalValidator) lookupCompound(ctx context.Context, client ports.PubChemClient, cid string) (bool, error) {
	if entry, ok := v.cacheGet(ctx, entities.NamespacePUBCHEM, cid); ok {
		return entry.Found, nil
	}

	found, err := client.CompoundExists(ctx, cid)
	if err != nil {
		return false, err
	}

	v.cachePut(ctx, ports.LookupEntry{Namespace: entities.NamespacePUBCHEM, ID: cid, Found: found})
	return found, nil
}

func (v *ExternalValidator) cacheGet(ctx context.Context, ns entities.Namespace, id string) (ports.LookupEntry, bool) {
	if v.deps.Cache == nil {
		return ports.LookupEntry{}, false
	}
	entry, ok, err := v.deps.Cache.Get(ctx, ns, id)
	if err != nil {
		v.logger.Warn("lookup cache read failed", "namespace", ns, "id", id, "err", err)
		return ports.LookupEntry{}, false
	}
	if ok {
		v.logger.Debug("lookup cache hit", "namespace", ns, "id", id)
	}
	return entry, ok
}

func (v *ExternalValidator) cachePut(ctx context.Context, entry ports.LookupEntry) {
	if v.deps.Cache == nil {
		return
	}
	entry.CheckedAt = v.now()
	if err := v.deps.Cache.Put(ctx, entry); err != nil {
		v.logger.Warn("lookup cache write failed", "namespace", entry.Namespace, "id", entry.ID, "err", err)
	}
}
