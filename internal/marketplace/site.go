package marketplace

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"auction-site/internal/auctionerrors"
	"auction-site/internal/clock"
	model "auction-site/internal/models"
	"auction-site/internal/repository"
	"auction-site/utils"
)

// Site is the handle of one tenant: it authenticates users, issues sessions
// and runs the background expired-session sweep. Configuration fields are
// immutable snapshots taken at load time.
type Site struct {
	siteID                   string
	name                     string
	timezone                 int
	sessionExpirationSeconds int
	minimumBidIncrement      float64

	db    repository.AuctionDB
	clock clock.AlarmClock

	mu    sync.Mutex // guards alarm
	alarm clock.Alarm
}

func (s *Site) Name() string                  { return s.name }
func (s *Site) Timezone() int                 { return s.timezone }
func (s *Site) SessionExpirationSeconds() int { return s.sessionExpirationSeconds }
func (s *Site) MinimumBidIncrement() float64  { return s.minimumBidIncrement }

// Now returns the current tenant-local time.
func (s *Site) Now() time.Time {
	return s.clock.Now()
}

// Equal reports whether both handles address the same tenant. Names are the
// tenant identity surface.
func (s *Site) Equal(other *Site) bool {
	return other != nil && s.name == other.name
}

// CreateUser registers a new account on this site with a hashed password.
func (s *Site) CreateUser(username, password string) error {
	if err := validateCredentials(username, password); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("create user %q: %w", username, err)
	}

	return s.db.InTransaction(func(tx repository.AuctionDB) error {
		if _, err := tx.GetSiteByID(s.siteID); err != nil {
			return err
		}
		_, err := tx.GetUserByUsername(s.siteID, username)
		if err == nil {
			return fmt.Errorf("create user %q: %w", username, auctionerrors.ErrNameAlreadyInUse)
		}
		if !errors.Is(err, auctionerrors.ErrNotFound) {
			return err
		}
		return tx.AddUser(model.User{
			UserID:       utils.GenerateID(),
			SiteID:       s.siteID,
			Username:     username,
			PasswordHash: hash,
		})
	})
}

// Login authenticates a user and issues a session valid for the site's
// expiration window. Unknown username or wrong password is a legitimate
// negative result: both the session and the error come back nil. A valid
// session already held by the user is returned unchanged; a stale one is
// replaced.
func (s *Site) Login(username, password string) (*Session, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	var session *Session
	err := s.db.InTransaction(func(tx repository.AuctionDB) error {
		if _, err := tx.GetSiteByID(s.siteID); err != nil {
			return err
		}

		user, err := tx.GetUserByUsername(s.siteID, username)
		if errors.Is(err, auctionerrors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if !utils.VerifyPassword(user.PasswordHash, password) {
			return nil
		}

		existing, err := tx.GetSessionByUser(user.UserID)
		switch {
		case err == nil && existing.ValidUntil.After(s.Now()):
			// Idempotent re-login.
			session = s.newSessionHandle(existing, s.newUserHandle(user))
			return nil
		case err == nil:
			if err := tx.RemoveSession(existing.SessionID); err != nil {
				return err
			}
		case !errors.Is(err, auctionerrors.ErrNotFound):
			return err
		}

		fresh := model.Session{
			SessionID:  utils.GenerateID(),
			SiteID:     s.siteID,
			UserID:     user.UserID,
			ValidUntil: s.Now().Add(s.expirationWindow()),
		}
		if err := tx.AddSession(fresh); err != nil {
			return err
		}
		session = s.newSessionHandle(fresh, s.newUserHandle(user))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteExpiredSessions evicts every session of this site whose deadline has
// passed. The background sweep calls it on a fixed interval; callers may also
// invoke it directly.
func (s *Site) DeleteExpiredSessions() error {
	evicted := 0
	err := s.db.InTransaction(func(tx repository.AuctionDB) error {
		if _, err := tx.GetSiteByID(s.siteID); err != nil {
			return err
		}
		var err error
		evicted, err = tx.RemoveExpiredSessions(s.siteID, s.Now())
		return err
	})
	if err != nil {
		return err
	}
	if evicted > 0 {
		utils.Info("expired sessions evicted", map[string]any{"site": s.name, "count": evicted})
	}
	return nil
}

// Delete removes the site and everything it owns, and stops the sweep.
func (s *Site) Delete() error {
	err := s.db.InTransaction(func(tx repository.AuctionDB) error {
		return tx.RemoveSite(s.siteID)
	})
	if err != nil {
		return err
	}

	s.stopSweep()
	utils.Info("site deleted", map[string]any{"site": s.name})
	return nil
}

// Users returns a point-in-time snapshot of the site's accounts.
func (s *Site) Users() ([]*User, error) {
	var users []*User
	err := s.db.InTransaction(func(tx repository.AuctionDB) error {
		if _, err := tx.GetSiteByID(s.siteID); err != nil {
			return err
		}
		stored, err := tx.GetUsersBySite(s.siteID)
		if err != nil {
			return err
		}
		users = make([]*User, 0, len(stored))
		for _, u := range stored {
			users = append(users, s.newUserHandle(u))
		}
		return nil
	})
	return users, err
}

// Sessions returns a point-in-time snapshot of the site's sessions.
func (s *Site) Sessions() ([]*Session, error) {
	var sessions []*Session
	err := s.db.InTransaction(func(tx repository.AuctionDB) error {
		if _, err := tx.GetSiteByID(s.siteID); err != nil {
			return err
		}
		stored, err := tx.GetSessionsBySite(s.siteID)
		if err != nil {
			return err
		}
		sessions = make([]*Session, 0, len(stored))
		for _, sess := range stored {
			user, err := tx.GetUserByID(sess.UserID)
			if err != nil {
				return err
			}
			sessions = append(sessions, s.newSessionHandle(sess, s.newUserHandle(user)))
		}
		return nil
	})
	return sessions, err
}

// Auctions returns a point-in-time snapshot of the site's auctions,
// optionally only those still running.
func (s *Site) Auctions(onlyNotEnded bool) ([]*Auction, error) {
	var auctions []*Auction
	err := s.db.InTransaction(func(tx repository.AuctionDB) error {
		if _, err := tx.GetSiteByID(s.siteID); err != nil {
			return err
		}
		stored, err := tx.GetAuctionsBySite(s.siteID)
		if err != nil {
			return err
		}
		now := s.Now()
		auctions = make([]*Auction, 0, len(stored))
		for _, a := range stored {
			if onlyNotEnded && !a.EndsOn.After(now) {
				continue
			}
			seller, err := tx.GetUserByID(a.SellerID)
			if err != nil {
				return err
			}
			auctions = append(auctions, s.newAuctionHandle(a, s.newUserHandle(seller)))
		}
		return nil
	})
	return auctions, err
}

func (s *Site) expirationWindow() time.Duration {
	return time.Duration(s.sessionExpirationSeconds) * time.Second
}

func (s *Site) startSweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alarm = s.clock.InstantiateAlarm(sweepInterval, s.sweep)
}

func (s *Site) stopSweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alarm != nil {
		s.alarm.Cancel()
		s.alarm = nil
	}
}

// sweep is the alarm callback: evict, then re-arm. The sweep dies for good
// once its site no longer exists.
func (s *Site) sweep() {
	if err := s.DeleteExpiredSessions(); err != nil {
		if errors.Is(err, auctionerrors.ErrNotFound) {
			utils.Warn("session sweep stopped, site is gone", map[string]any{"site": s.name})
			s.stopSweep()
			return
		}
		// Transient failures (store unavailable) leave the sweep armed.
		utils.Error("session sweep failed", map[string]any{"site": s.name, "error": err.Error()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alarm == nil {
		return // deleted concurrently
	}
	s.alarm = s.clock.InstantiateAlarm(sweepInterval, s.sweep)
}

func (s *Site) newUserHandle(u model.User) *User {
	return &User{userID: u.UserID, username: u.Username, site: s}
}

func (s *Site) newSessionHandle(sess model.Session, user *User) *Session {
	return &Session{sessionID: sess.SessionID, validUntil: sess.ValidUntil, user: user, site: s}
}

func (s *Site) newAuctionHandle(a model.Auction, seller *User) *Auction {
	return &Auction{
		auctionID:   a.AuctionID,
		description: a.Description,
		endsOn:      a.EndsOn,
		seller:      seller,
		site:        s,
	}
}

// validateCredentials bounds-checks a username/password pair the same way for
// account creation and login.
func validateCredentials(username, password string) error {
	if username == "" {
		return fmt.Errorf("username: %w", auctionerrors.ErrArgumentNull)
	}
	if password == "" {
		return fmt.Errorf("password: %w", auctionerrors.ErrArgumentNull)
	}
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return fmt.Errorf("username %q: invalid length: %w", username, auctionerrors.ErrInvalidArgument)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password too short: %w", auctionerrors.ErrInvalidArgument)
	}
	return nil
}
