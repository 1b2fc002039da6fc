package character

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Listing
// ============================================================================

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCharacterCreated = "Character created"
	LogMsgCharacterDeleted = "Character deleted"
	LogMsgBankDeposit      = "Cash deposited"
	LogMsgBankWithdraw     = "Cash withdrawn"
	LogMsgEquipped         = "Equipment slot updated"
	LogMsgUnequipped       = "Equipment slot cleared"
	LogMsgAmbiguousName    = "Several characters share a folded name, using the oldest"
)
