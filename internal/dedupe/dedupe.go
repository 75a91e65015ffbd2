package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent duplicate work. Using a centralized singleflight.Group
// ensures that only one computation runs for a given key while other
// callers wait for the result.

import "golang.org/x/sync/singleflight"

// ArenaGroup deduplicates arena lookups keyed by the lowercase arena
// name, so a burst of identical requests hits the database once.
var ArenaGroup singleflight.Group

// ResolveGroup deduplicates targeting resolutions keyed by the canonical
// request key (see keys.ResolveKey). Resolution is pure, so concurrent
// identical requests safely share one computation.
var ResolveGroup singleflight.Group
