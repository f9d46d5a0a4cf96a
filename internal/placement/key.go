package placement

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tkastudio/pictograph/internal/geom"
	"github.com/tkastudio/pictograph/internal/motion"
	"github.com/tkastudio/pictograph/internal/overrides"
)

// Tier identifies which resolution tier produced an adjustment.
type Tier string

const (
	// TierExact means the full letter+motion key matched an override.
	TierExact Tier = "exact"

	// TierMotionType means the coarse motion-type key matched.
	TierMotionType Tier = "motion_type"

	// TierGeneric means no override matched; the generic adjustment
	// engine applies.
	TierGeneric Tier = "generic"
)

// BuildKey produces the canonical exact-tier placement key for a
// descriptor in its pictograph context. The key is NFC-normalized:
// notation letters include Greek glyphs, and the override table must
// match them byte for byte.
//
// Shape: letter "_" motionType "_" turns, with the letter segment
// omitted when the pictograph has no letter.
func BuildKey(d motion.Descriptor, letter string) string {
	parts := make([]string, 0, 3)
	if letter != "" {
		parts = append(parts, letter)
	}
	parts = append(parts, string(d.MotionType), formatTurns(d.Turns))
	return norm.NFC.String(strings.Join(parts, "_"))
}

// CoarseKey produces the fallback key built from the motion type alone.
func CoarseKey(d motion.Descriptor) string {
	return string(d.MotionType)
}

func formatTurns(t motion.Turns) string {
	return strconv.FormatFloat(float64(t), 'f', -1, 64)
}

// KeyResolver performs the three-tier override lookup: exact key,
// coarse motion-type key, then the generic computed adjustment. The
// override table is the single authority for hand-curated placements
// and always wins when present.
//
// The table is supplied at construction and treated as immutable; the
// resolver holds no other state and is safe for concurrent use.
type KeyResolver struct {
	table overrides.Table
}

// NewKeyResolver creates a KeyResolver over an immutable override
// table. A nil table is valid and resolves everything to TierGeneric.
func NewKeyResolver(table overrides.Table) *KeyResolver {
	return &KeyResolver{table: table}
}

// Resolve looks up the override adjustment for a descriptor. When no
// tier matches it returns TierGeneric and ok=false; the caller falls
// back to the generic adjustment engine. A missing entry is expected
// and common, not an error.
func (r *KeyResolver) Resolve(d motion.Descriptor, letter string) (geom.Point, Tier, bool) {
	if adj, ok := r.table[BuildKey(d, letter)]; ok {
		return adj, TierExact, true
	}
	if adj, ok := r.table[CoarseKey(d)]; ok {
		return adj, TierMotionType, true
	}
	return geom.Point{}, TierGeneric, false
}
