package marketplace

import (
	"fmt"

	"auction-site/internal/auctionerrors"
	"auction-site/internal/repository"
)

// User is the handle of one tenant-scoped account.
type User struct {
	userID   string
	username string
	site     *Site
}

func (u *User) Username() string { return u.username }
func (u *User) Site() *Site      { return u.site }

// Equal reports whether both handles address the same account: usernames
// within the same site.
func (u *User) Equal(other *User) bool {
	return other != nil && u.username == other.username && u.site.Equal(other.site)
}

// Delete removes the account. A user who is selling or winning an auction
// still running must see it through first; once they are gone, bids they
// placed keep the auction history with the bidder reference cleared.
func (u *User) Delete() error {
	return u.site.db.InTransaction(func(tx repository.AuctionDB) error {
		if _, err := tx.GetUserByID(u.userID); err != nil {
			return err
		}

		auctions, err := tx.GetAuctionsBySite(u.site.siteID)
		if err != nil {
			return err
		}
		now := u.site.Now()
		for _, a := range auctions {
			if !a.EndsOn.After(now) {
				continue
			}
			if a.SellerID == u.userID {
				return fmt.Errorf("delete user %q: still selling a running auction: %w", u.username, auctionerrors.ErrInvalidOperation)
			}
			if a.WinnerID != nil && *a.WinnerID == u.userID {
				return fmt.Errorf("delete user %q: currently winning a running auction: %w", u.username, auctionerrors.ErrInvalidOperation)
			}
		}

		return tx.RemoveUser(u.userID)
	})
}

// WonAuctions returns every auction of this site where the user is the
// recorded winner.
func (u *User) WonAuctions() ([]*Auction, error) {
	var won []*Auction
	err := u.site.db.InTransaction(func(tx repository.AuctionDB) error {
		auctions, err := tx.GetAuctionsByWinner(u.userID)
		if err != nil {
			return err
		}
		won = make([]*Auction, 0, len(auctions))
		for _, a := range auctions {
			seller, err := tx.GetUserByID(a.SellerID)
			if err != nil {
				return err
			}
			won = append(won, u.site.newAuctionHandle(a, u.site.newUserHandle(seller)))
		}
		return nil
	})
	return won, err
}
