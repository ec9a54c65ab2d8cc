package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs for the showtime service.
// Pattern: showtime:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_STATIC_LONG   = 24 * time.Hour // districts, cities
	TTL_STATIC_MEDIUM = 12 * time.Hour // venue and screen layouts
	TTL_STATIC_SHORT  = 6 * time.Hour  // user profiles
)

const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // show details
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // show listings
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // food catalog
)

const (
	TTL_DYNAMIC_SHORT = 5 * time.Minute // seat grid with booked overlays
	TTL_DYNAMIC_QUICK = 2 * time.Minute // booking availability
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "showtime"
)

// ================== REGIONS MODULE ==================

const (
	CACHE_KEY_DISTRICTS = CACHE_PREFIX + ":regions:districts"
	CACHE_KEY_CITIES    = CACHE_PREFIX + ":regions:cities" // + :district:X
)

// ================== SHOWS MODULE ==================

const (
	CACHE_KEY_SHOWS_LIST   = CACHE_PREFIX + ":shows:list"        // + :city:X:kind:Y:page:Z
	CACHE_KEY_SHOW_DETAIL  = CACHE_PREFIX + ":shows:detail:uuid:" // + show-id
	CACHE_KEY_SHOWS_BY_VENUE = CACHE_PREFIX + ":shows:by_venue:uuid:" // + venue-id
)

// ================== SEATS MODULE ==================

const (
	CACHE_KEY_SEAT_GRID     = CACHE_PREFIX + ":seats:grid:show:"     // + show-id
	CACHE_KEY_SEAT_SELECTION = CACHE_PREFIX + ":seats:selection:show:" // + show-id:user:user-id
)

// ================== FOOD MODULE ==================

const (
	CACHE_KEY_FOOD_CATALOG = CACHE_PREFIX + ":food:catalog"
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_SHOWS_ALL   = CACHE_PREFIX + ":shows:*"
	PATTERN_INVALIDATE_REGIONS_ALL = CACHE_PREFIX + ":regions:*"
	PATTERN_INVALIDATE_SEATS_ALL   = CACHE_PREFIX + ":seats:*"
	PATTERN_INVALIDATE_FOOD_ALL    = CACHE_PREFIX + ":food:*"
)

// ================== KEY BUILDERS ==================

func BuildShowDetailKey(showID string) string {
	return CACHE_KEY_SHOW_DETAIL + showID
}

func BuildShowListKey(city, kind string, page, limit int) string {
	return fmt.Sprintf("%s:city:%s:kind:%s:page:%d:limit:%d", CACHE_KEY_SHOWS_LIST, city, kind, page, limit)
}

func BuildSeatGridKey(showID string) string {
	return CACHE_KEY_SEAT_GRID + showID
}

func BuildSelectionKey(showID, userID string) string {
	return fmt.Sprintf("%s%s:user:%s", CACHE_KEY_SEAT_SELECTION, showID, userID)
}

func BuildCitiesKey(district string) string {
	if district == "" {
		return CACHE_KEY_CITIES
	}
	return CACHE_KEY_CITIES + ":district:" + district
}
