package authorization

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jlap11/gestabiz-authz/internal/catalog"
	"github.com/jlap11/gestabiz-authz/internal/entities"
	"github.com/jlap11/gestabiz-authz/internal/infrastructure/metrics"
	"github.com/jlap11/gestabiz-authz/pkg/cache"
)

// Authorizer wraps the pure decision functions with optional active-set
// memoization and decision metrics, for embedding callers that evaluate the
// same (user, business) snapshot many times in a row (UI capability gating
// fires one check per rendered control).
//
// The façade performs no I/O of its own. Caching requires the caller to
// supply a SnapshotVersion identifying the loaded grant set; without one,
// every call falls through to pure evaluation, since a cached result could
// otherwise outlive a grant change.
type Authorizer struct {
	cache     cache.Cache
	collector *metrics.Collector
	cacheTTL  time.Duration
}

// CheckRequest carries one loaded (user, business) authorization snapshot.
type CheckRequest struct {
	UserID          string                     // User being evaluated
	OwnerID         string                     // Business owner ID
	BusinessID      string                     // Business the roles are scoped to
	Grants          []*entities.UserPermission // Grants loaded for (user, business)
	Roles           []*entities.BusinessRole   // Role records loaded for the user
	SnapshotVersion string                     // Optional version of the loaded data; enables caching
}

// NewAuthorizer creates an Authorizer without caching or metrics.
func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// NewAuthorizerWithCache creates an Authorizer with active-set caching and
// decision metrics enabled. Either dependency may be nil to disable it.
func NewAuthorizerWithCache(c cache.Cache, collector *metrics.Collector, cacheTTL time.Duration) *Authorizer {
	return &Authorizer{
		cache:     c,
		collector: collector,
		cacheTTL:  cacheTTL,
	}
}

// cacheKey derives the cache key for a request's active permission set.
// The snapshot version is part of the key, so a new snapshot never reads
// entries computed from an older one.
func (a *Authorizer) cacheKey(req *CheckRequest) string {
	keyData := fmt.Sprintf("%s:%s:%s:%s", req.UserID, req.OwnerID, req.BusinessID, req.SnapshotVersion)
	hash := sha256.Sum256([]byte(keyData))
	return hex.EncodeToString(hash[:])
}

// activeSet returns the user's active permission set, from cache when the
// request carries a snapshot version and the cache holds a fresh entry.
func (a *Authorizer) activeSet(ctx context.Context, req *CheckRequest) []entities.Permission {
	useCache := a.cache != nil && req.SnapshotVersion != ""
	var key string

	if useCache {
		key = a.cacheKey(req)
		if cached, found := a.cache.Get(ctx, key); found {
			if set, ok := cached.([]entities.Permission); ok {
				return set
			}
		}
	}

	set := GetUserActivePermissions(req.UserID, req.OwnerID, req.Grants)

	if useCache {
		_ = a.cache.Set(ctx, key, set, a.cacheTTL)
	}
	return set
}

// Check reports whether the user may perform the action guarded by the
// given permission.
func (a *Authorizer) Check(ctx context.Context, req *CheckRequest, permission entities.Permission) bool {
	if IsOwner(req.UserID, req.OwnerID) {
		if a.collector != nil {
			a.collector.RecordOwnerBypass()
			a.collector.RecordCheck(true)
		}
		return true
	}

	allowed := false
	for _, p := range a.activeSet(ctx, req) {
		if p == permission {
			allowed = true
			break
		}
	}
	if a.collector != nil {
		a.collector.RecordCheck(allowed)
	}
	return allowed
}

// CheckAny reports whether the user holds at least one required permission.
func (a *Authorizer) CheckAny(ctx context.Context, req *CheckRequest, required []entities.Permission) bool {
	if IsOwner(req.UserID, req.OwnerID) {
		if a.collector != nil {
			a.collector.RecordOwnerBypass()
			a.collector.RecordCheck(true)
		}
		return true
	}

	set := a.activeSet(ctx, req)
	allowed := false
	for _, p := range required {
		if containsPermission(set, p) {
			allowed = true
			break
		}
	}
	if a.collector != nil {
		a.collector.RecordCheck(allowed)
	}
	return allowed
}

// CheckAll reports whether the user holds every required permission.
func (a *Authorizer) CheckAll(ctx context.Context, req *CheckRequest, required []entities.Permission) bool {
	if IsOwner(req.UserID, req.OwnerID) {
		if a.collector != nil {
			a.collector.RecordOwnerBypass()
			a.collector.RecordCheck(true)
		}
		return true
	}

	set := a.activeSet(ctx, req)
	allowed := true
	for _, p := range required {
		if !containsPermission(set, p) {
			allowed = false
			break
		}
	}
	if a.collector != nil {
		a.collector.RecordCheck(allowed)
	}
	return allowed
}

// ActivePermissions returns every permission the user can currently
// exercise in the business.
func (a *Authorizer) ActivePermissions(ctx context.Context, req *CheckRequest) []entities.Permission {
	if a.collector != nil {
		a.collector.RecordActiveSetRequest()
	}
	if IsOwner(req.UserID, req.OwnerID) {
		if a.collector != nil {
			a.collector.RecordOwnerBypass()
		}
		return catalog.All()
	}
	// Copy so callers cannot mutate a cached set
	set := a.activeSet(ctx, req)
	out := make([]entities.Permission, len(set))
	copy(out, set)
	return out
}

// Role returns the user's active role within the request's business.
func (a *Authorizer) Role(req *CheckRequest) (entities.Role, bool) {
	return GetUserBusinessRole(req.Roles, req.BusinessID)
}

// CanProvideServices reports whether the user is a bookable service
// provider in the request's business.
func (a *Authorizer) CanProvideServices(req *CheckRequest) bool {
	return CanProvideServices(req.Roles, req.BusinessID)
}

// containsPermission reports whether the set contains the permission
func containsPermission(set []entities.Permission, p entities.Permission) bool {
	for _, candidate := range set {
		if candidate == p {
			return true
		}
	}
	return false
}
