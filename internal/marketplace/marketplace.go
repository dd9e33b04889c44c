// Package marketplace implements the multi-tenant auction domain engine:
// sites, users, sliding-expiration sessions and proxy-bidding auctions.
//
// Site, Session, Auction and User values are disposable views over the
// persistence gateway: every mutating operation re-reads authoritative state
// inside a single transaction instead of trusting the fields cached on the
// handle at construction time.
package marketplace

import "time"

// Validation bounds for site and account creation.
const (
	MinSiteNameLength = 1
	MaxSiteNameLength = 128
	MinUsernameLength = 3
	MaxUsernameLength = 64
	MinPasswordLength = 4
	MinTimezone       = -12
	MaxTimezone       = 12
)

// sweepInterval is how often a site evicts expired sessions. The alarm
// re-arms itself after every firing.
const sweepInterval = 5 * time.Minute
