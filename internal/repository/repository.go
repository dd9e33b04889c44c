package repository

import (
	"time"

	model "auction-site/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_auctiondb.go -package=repository

// AuctionDB is the persistence gateway for the auction engine. It is the
// single source of truth shared by all concurrent actors: handles re-read
// authoritative state through it before every mutation.
//
// Error contract:
//   - lookups of absent entities wrap auctionerrors.ErrNotFound
//   - duplicate site names and usernames wrap auctionerrors.ErrNameAlreadyInUse
//   - conflicting concurrent writes wrap auctionerrors.ErrConcurrentModification
//     (transient, the caller may retry the whole transaction)
//   - connectivity failures wrap auctionerrors.ErrUnavailable
type AuctionDB interface {
	// InTransaction runs fn as a single atomic unit: every read and write fn
	// performs through tx commits together or not at all. Calls nest (an
	// inner InTransaction joins the outer scope).
	InTransaction(fn func(tx AuctionDB) error) error

	AddSite(site model.Site) error
	GetSiteByID(siteID string) (model.Site, error)
	GetSiteByName(name string) (model.Site, error)
	GetSites() ([]model.Site, error)
	// RemoveSite deletes the site and cascades to its users, sessions,
	// auctions and their bids.
	RemoveSite(siteID string) error

	AddUser(user model.User) error
	GetUserByID(userID string) (model.User, error)
	GetUserByUsername(siteID, username string) (model.User, error)
	GetUsersBySite(siteID string) ([]model.User, error)
	// RemoveUser deletes the user and their session; bids they placed and
	// auctions they were winning keep their history with the user reference
	// cleared instead of cascading.
	RemoveUser(userID string) error

	AddSession(session model.Session) error
	GetSession(sessionID string) (model.Session, error)
	GetSessionByUser(userID string) (model.Session, error)
	GetSessionsBySite(siteID string) ([]model.Session, error)
	SetSessionValidUntil(sessionID string, validUntil time.Time) error
	RemoveSession(sessionID string) error
	// RemoveExpiredSessions deletes every session of the site whose
	// ValidUntil is at or before cutoff and reports how many went.
	RemoveExpiredSessions(siteID string, cutoff time.Time) (int, error)

	AddAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	GetAuctionsBySite(siteID string) ([]model.Auction, error)
	GetAuctionsByWinner(userID string) ([]model.Auction, error)
	// UpdateAuction persists price, ceiling and winner of an existing auction.
	UpdateAuction(auction model.Auction) error
	// RemoveAuction deletes the auction and its bids.
	RemoveAuction(auctionID string) error

	RecordBid(bid model.Bid) error
	// GetBidsByAuction returns the auction's accepted bids ordered by
	// placement time; an auction without bids yields an empty slice.
	GetBidsByAuction(auctionID string) ([]model.Bid, error)
}
