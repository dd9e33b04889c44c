package models

import "time"

// Site is a tenant of the marketplace: an isolated auction site with its own
// users, sessions, auctions and bidding configuration. Site names are unique
// across the whole host.
type Site struct {
	SiteID                   string  `json:"site_id" gorm:"type:uuid;primaryKey"`
	Name                     string  `json:"name" gorm:"type:varchar(128);uniqueIndex;not null"`
	Timezone                 int     `json:"timezone" gorm:"not null"`
	SessionExpirationSeconds int     `json:"session_expiration_seconds" gorm:"not null"`
	MinimumBidIncrement      float64 `json:"minimum_bid_increment" gorm:"not null"`
}

// User is a tenant-scoped account. Usernames are unique within a site.
type User struct {
	UserID       string `json:"user_id" gorm:"type:uuid;primaryKey"`
	SiteID       string `json:"site_id" gorm:"type:uuid;uniqueIndex:idx_users_site_username;not null"`
	Username     string `json:"username" gorm:"type:varchar(64);uniqueIndex:idx_users_site_username;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
}

// Session is an authenticated principal with a sliding expiration.
// A user holds at most one session at a time.
type Session struct {
	SessionID  string    `json:"session_id" gorm:"type:uuid;primaryKey"`
	SiteID     string    `json:"site_id" gorm:"type:uuid;index;not null"`
	UserID     string    `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	ValidUntil time.Time `json:"valid_until" gorm:"not null"`
}

// Auction is a time-boxed listing driven by proxy bidding. CurrentPrice is
// the publicly visible price; MaxOffer is the winner's private ceiling and
// never falls below CurrentPrice. WinnerID is nil until the first bid is
// accepted.
type Auction struct {
	AuctionID    string    `json:"auction_id" gorm:"type:uuid;primaryKey"`
	SiteID       string    `json:"site_id" gorm:"type:uuid;index;not null"`
	SellerID     string    `json:"seller_id" gorm:"type:uuid;index;not null"`
	WinnerID     *string   `json:"winner_id,omitempty" gorm:"type:uuid;index"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	EndsOn       time.Time `json:"ends_on" gorm:"not null"`
	CurrentPrice float64   `json:"current_price" gorm:"not null"`
	MaxOffer     float64   `json:"-" gorm:"not null"`
}

// Bid is one accepted offer on an auction. Immutable once recorded. UserID
// goes nil if the bidder is later deleted; the auction history survives.
type Bid struct {
	BidID     string    `json:"bid_id" gorm:"type:uuid;primaryKey"`
	AuctionID string    `json:"auction_id" gorm:"type:uuid;uniqueIndex:idx_bids_auction_user_placed_at;not null"`
	UserID    *string   `json:"user_id,omitempty" gorm:"type:uuid;uniqueIndex:idx_bids_auction_user_placed_at"`
	Offer     float64   `json:"offer" gorm:"not null"`
	PlacedAt  time.Time `json:"placed_at" gorm:"uniqueIndex:idx_bids_auction_user_placed_at;not null"`
}
