// Package snapshot loads authorization snapshots for the CLI embedding.
// A snapshot is the JSON form of the data a caller is expected to supply to
// the engine: the business identity plus the grant and role records loaded
// for its users. The engine itself never reads files; this loader is the
// caller side of that contract.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jlap11/gestabiz-authz/internal/entities"
	"github.com/jlap11/gestabiz-authz/internal/infrastructure/metrics"
	"github.com/jlap11/gestabiz-authz/internal/services/legacy"
)

// Snapshot holds the loaded authorization data for one business.
type Snapshot struct {
	BusinessID string                     `json:"business_id"`
	OwnerID    string                     `json:"owner_id"`
	Grants     []*entities.UserPermission `json:"grants"`
	Roles      []*entities.BusinessRole   `json:"roles"`

	// LegacyPermissions carries old-format grant data keyed by user ID.
	// Identifiers listed here are upgraded to granular transient grants
	// when the user's grants are assembled.
	LegacyPermissions map[string][]string `json:"legacy_permissions,omitempty"`

	collector *metrics.Collector
}

// SetCollector attaches a decision metrics collector. Legacy identifier
// lookups made while assembling grants are recorded against it.
func (s *Snapshot) SetCollector(c *metrics.Collector) {
	s.collector = c
}

// Load reads and validates a snapshot file.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot file %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks that the snapshot is well-formed.
func (s *Snapshot) Validate() error {
	if s.BusinessID == "" {
		return fmt.Errorf("business ID is required")
	}
	if s.OwnerID == "" {
		return fmt.Errorf("owner ID is required")
	}
	for i, g := range s.Grants {
		if g == nil {
			return fmt.Errorf("grant %d is null", i)
		}
		if err := g.Validate(); err != nil {
			return fmt.Errorf("grant %d: %w", i, err)
		}
		if g.BusinessID != s.BusinessID {
			return fmt.Errorf("grant %d belongs to business %s, snapshot is for %s", i, g.BusinessID, s.BusinessID)
		}
	}
	for i, r := range s.Roles {
		if r == nil {
			return fmt.Errorf("role %d is null", i)
		}
		if err := r.Validate(); err != nil {
			return fmt.Errorf("role %d: %w", i, err)
		}
		if r.BusinessID != s.BusinessID {
			return fmt.Errorf("role %d belongs to business %s, snapshot is for %s", i, r.BusinessID, s.BusinessID)
		}
	}
	return nil
}

// GrantsFor assembles the grant list to evaluate for one user: the user's
// stored grants plus transient grants upgraded from any legacy identifiers
// recorded for them. Upgraded grants are attributed to the business owner.
func (s *Snapshot) GrantsFor(userID string, now time.Time) []*entities.UserPermission {
	var grants []*entities.UserPermission
	for _, g := range s.Grants {
		if g.UserID == userID {
			grants = append(grants, g)
		}
	}
	if lps := s.LegacyPermissions[userID]; len(lps) > 0 {
		if s.collector != nil {
			for _, lp := range lps {
				s.collector.RecordLegacyTranslation(legacy.IsKnown(lp))
			}
		}
		grants = append(grants, legacy.UpgradeGrants(userID, s.BusinessID, s.OwnerID, lps, now)...)
	}
	return grants
}

// RolesFor returns the user's role records in the snapshot's business.
func (s *Snapshot) RolesFor(userID string) []*entities.BusinessRole {
	var roles []*entities.BusinessRole
	for _, r := range s.Roles {
		if r.UserID == userID {
			roles = append(roles, r)
		}
	}
	return roles
}
