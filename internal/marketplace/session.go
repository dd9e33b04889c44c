package marketplace

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"auction-site/internal/auctionerrors"
	model "auction-site/internal/models"
	"auction-site/internal/repository"
	"auction-site/utils"
)

// Session is the handle of an authenticated principal. ValidUntil is a
// read-only snapshot refreshed after every successful activity; the
// authoritative deadline lives in the store and is re-read before use.
type Session struct {
	sessionID string
	user      *User
	site      *Site

	mu         sync.Mutex
	validUntil time.Time
}

func (s *Session) ID() string  { return s.sessionID }
func (s *Session) User() *User { return s.user }

// ValidUntil returns the expiration deadline as of the last activity seen
// through this handle.
func (s *Session) ValidUntil() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validUntil
}

// Equal reports whether both handles address the same session.
func (s *Session) Equal(other *Session) bool {
	return other != nil && s.sessionID == other.sessionID
}

// CreateAuction lists a new auction sold by this session's user, with
// currentPrice and maxOffer both at startingPrice and no winner. Successful
// creation renews the session.
func (s *Session) CreateAuction(description string, endsOn time.Time, startingPrice float64) (*Auction, error) {
	if !s.ValidUntil().After(s.site.Now()) {
		return nil, fmt.Errorf("create auction: session %s is expired: %w", s.sessionID, auctionerrors.ErrInvalidOperation)
	}
	if description == "" {
		return nil, fmt.Errorf("create auction: description: %w", auctionerrors.ErrArgumentNull)
	}
	if startingPrice < 0 {
		return nil, fmt.Errorf("create auction: starting price %v: %w", startingPrice, auctionerrors.ErrOutOfRange)
	}
	if endsOn.Before(s.site.Now()) {
		return nil, fmt.Errorf("create auction: ends on %v: %w", endsOn, auctionerrors.ErrTimeInconsistency)
	}

	var (
		created model.Auction
		renewed time.Time
	)
	err := s.site.db.InTransaction(func(tx repository.AuctionDB) error {
		stored, err := tx.GetSession(s.sessionID)
		if errors.Is(err, auctionerrors.ErrNotFound) {
			return fmt.Errorf("create auction: session %s no longer exists: %w", s.sessionID, auctionerrors.ErrInvalidOperation)
		}
		if err != nil {
			return err
		}
		now := s.site.Now()
		if !stored.ValidUntil.After(now) {
			return fmt.Errorf("create auction: session %s is expired: %w", s.sessionID, auctionerrors.ErrInvalidOperation)
		}

		created = model.Auction{
			AuctionID:    utils.GenerateID(),
			SiteID:       s.site.siteID,
			SellerID:     s.user.userID,
			Description:  description,
			EndsOn:       endsOn,
			CurrentPrice: startingPrice,
			MaxOffer:     startingPrice,
		}
		if err := tx.AddAuction(created); err != nil {
			return err
		}

		renewed = now.Add(s.site.expirationWindow())
		return tx.SetSessionValidUntil(s.sessionID, renewed)
	})
	if err != nil {
		return nil, err
	}

	s.setValidUntil(renewed)
	return s.site.newAuctionHandle(created, s.user), nil
}

// Logout destroys the session. A session already evicted cannot log out.
func (s *Session) Logout() error {
	return s.site.db.InTransaction(func(tx repository.AuctionDB) error {
		err := tx.RemoveSession(s.sessionID)
		if errors.Is(err, auctionerrors.ErrNotFound) {
			return fmt.Errorf("logout: session %s no longer exists: %w", s.sessionID, auctionerrors.ErrInvalidOperation)
		}
		return err
	})
}

func (s *Session) setValidUntil(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validUntil = t
}
