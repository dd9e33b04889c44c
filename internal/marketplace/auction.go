package marketplace

import (
	"errors"
	"fmt"
	"math"
	"time"

	"auction-site/internal/auctionerrors"
	model "auction-site/internal/models"
	"auction-site/internal/repository"
	"auction-site/utils"
)

// Auction is the handle of one listing. Description, deadline, seller and
// site are fixed at creation; price, ceiling and winner live in the store
// and are re-read inside each operation.
type Auction struct {
	auctionID   string
	description string
	endsOn      time.Time
	seller      *User
	site        *Site
}

func (a *Auction) ID() string          { return a.auctionID }
func (a *Auction) Description() string { return a.description }
func (a *Auction) EndsOn() time.Time   { return a.endsOn }
func (a *Auction) Seller() *User       { return a.seller }

// Equal reports whether both handles address the same auction of the same
// site.
func (a *Auction) Equal(other *Auction) bool {
	return other != nil && a.auctionID == other.auctionID && a.site.Equal(other.site)
}

// Bid places a proxy bid on behalf of the session's user. The returned
// boolean tells whether the offer was accepted; a too-low offer is rejected
// with (false, nil) and leaves the auction untouched. Visiting the auction
// renews the bidder's session either way.
//
// The visible price moves by second-price rules: it climbs only as far as
// needed to beat the runner-up ceiling plus the site's minimum increment,
// while the winner's own ceiling (maxOffer) stays private.
func (a *Auction) Bid(session *Session, offer float64) (bool, error) {
	if !a.endsOn.After(a.site.Now()) {
		return false, fmt.Errorf("bid on auction %s: auction is closed: %w", a.auctionID, auctionerrors.ErrInvalidOperation)
	}
	if offer < 0 {
		return false, fmt.Errorf("bid on auction %s: offer cannot be negative: %w", a.auctionID, auctionerrors.ErrOutOfRange)
	}
	if session == nil {
		return false, fmt.Errorf("bid on auction %s: session: %w", a.auctionID, auctionerrors.ErrArgumentNull)
	}

	var (
		accepted bool
		renewed  time.Time
	)
	err := a.site.db.InTransaction(func(tx repository.AuctionDB) error {
		auction, err := tx.GetAuction(a.auctionID)
		if err != nil {
			return err
		}

		stored, err := tx.GetSession(session.sessionID)
		if errors.Is(err, auctionerrors.ErrNotFound) {
			return fmt.Errorf("bid on auction %s: session %s no longer exists: %w", a.auctionID, session.sessionID, auctionerrors.ErrInvalidArgument)
		}
		if err != nil {
			return err
		}
		now := a.site.Now()
		if !stored.ValidUntil.After(now) {
			return fmt.Errorf("bid on auction %s: session %s is expired: %w", a.auctionID, session.sessionID, auctionerrors.ErrInvalidArgument)
		}

		bidder, err := tx.GetUserByID(stored.UserID)
		if err != nil {
			return err
		}
		if bidder.SiteID != auction.SiteID {
			return fmt.Errorf("bid on auction %s: user %q belongs to another site: %w", a.auctionID, bidder.Username, auctionerrors.ErrInvalidArgument)
		}
		if bidder.UserID == auction.SellerID {
			return fmt.Errorf("bid on auction %s: the seller cannot bid on their own auction: %w", a.auctionID, auctionerrors.ErrInvalidArgument)
		}

		// The visit counts as activity even when the bid is rejected below.
		renewed = now.Add(a.site.expirationWindow())
		if err := tx.SetSessionValidUntil(stored.SessionID, renewed); err != nil {
			return err
		}

		bids, err := tx.GetBidsByAuction(auction.AuctionID)
		if err != nil {
			return err
		}

		increment := a.site.minimumBidIncrement
		isWinning := auction.WinnerID != nil && *auction.WinnerID == bidder.UserID
		isFirstBid := len(bids) == 0

		// A winner must raise their own ceiling by at least the increment;
		// a challenger must clear the visible price, and past the first bid
		// also the increment above it.
		if isWinning && offer < auction.CurrentPrice+increment {
			return nil
		}
		if !isWinning && offer < auction.CurrentPrice {
			return nil
		}
		if !isWinning && !isFirstBid && offer < auction.CurrentPrice+increment {
			return nil
		}
		// One user's own offers must never decrease.
		for i := len(bids) - 1; i >= 0; i-- {
			prior := bids[i]
			if prior.UserID != nil && *prior.UserID == bidder.UserID {
				if offer < prior.Offer {
					return nil
				}
				break
			}
		}

		switch {
		case isFirstBid:
			auction.MaxOffer = offer
			auction.WinnerID = &bidder.UserID
		case isWinning:
			// Raising one's own ceiling never moves the visible price.
			auction.MaxOffer = offer
		case offer > auction.MaxOffer:
			auction.CurrentPrice = math.Min(offer, auction.MaxOffer+increment)
			auction.MaxOffer = offer
			auction.WinnerID = &bidder.UserID
		default:
			// The sitting winner's proxy outbids the challenger.
			auction.CurrentPrice = math.Min(auction.MaxOffer, offer+increment)
		}

		if err := tx.UpdateAuction(auction); err != nil {
			return err
		}
		if err := tx.RecordBid(model.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: auction.AuctionID,
			UserID:    &bidder.UserID,
			Offer:     offer,
			PlacedAt:  now,
		}); err != nil {
			return err
		}
		accepted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	session.setValidUntil(renewed)
	return accepted, nil
}

// CurrentPrice returns the publicly visible price.
func (a *Auction) CurrentPrice() (float64, error) {
	auction, err := a.site.db.GetAuction(a.auctionID)
	if err != nil {
		return 0, err
	}
	return auction.CurrentPrice, nil
}

// CurrentWinner returns the user currently winning the auction, nil if no
// bid has been accepted yet.
func (a *Auction) CurrentWinner() (*User, error) {
	var winner *User
	err := a.site.db.InTransaction(func(tx repository.AuctionDB) error {
		auction, err := tx.GetAuction(a.auctionID)
		if err != nil {
			return err
		}
		if auction.WinnerID == nil {
			return nil
		}
		user, err := tx.GetUserByID(*auction.WinnerID)
		if err != nil {
			return err
		}
		winner = a.site.newUserHandle(user)
		return nil
	})
	return winner, err
}

// Delete removes the auction and its bid history, at any time.
func (a *Auction) Delete() error {
	return a.site.db.InTransaction(func(tx repository.AuctionDB) error {
		return tx.RemoveAuction(a.auctionID)
	})
}
