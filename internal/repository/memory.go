package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-site/internal/auctionerrors"
	model "auction-site/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// One mutex serializes transactions, so concurrent modification conflicts
// cannot happen; rollback is a snapshot restore.
type MemoryRepo struct {
	mu   sync.Mutex
	data *memoryData
}

type memoryData struct {
	sites    map[string]model.Site    // key: siteID
	users    map[string]model.User    // key: userID
	sessions map[string]model.Session // key: sessionID
	auctions map[string]model.Auction // key: auctionID
	bids     map[string][]model.Bid   // key: auctionID -> bids in placement order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: &memoryData{
		sites:    make(map[string]model.Site),
		users:    make(map[string]model.User),
		sessions: make(map[string]model.Session),
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
	}}
}

// InTransaction serializes fn against all other operations and restores the
// pre-transaction snapshot if fn fails.
func (r *MemoryRepo) InTransaction(fn func(tx AuctionDB) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.data.clone()
	if err := fn(&memView{data: r.data}); err != nil {
		*r.data = *snapshot
		return err
	}
	return nil
}

func (r *MemoryRepo) AddSite(site model.Site) error {
	return r.locked(func(v *memView) error { return v.AddSite(site) })
}

func (r *MemoryRepo) GetSiteByID(siteID string) (site model.Site, err error) {
	err = r.locked(func(v *memView) error { site, err = v.GetSiteByID(siteID); return err })
	return site, err
}

func (r *MemoryRepo) GetSiteByName(name string) (site model.Site, err error) {
	err = r.locked(func(v *memView) error { site, err = v.GetSiteByName(name); return err })
	return site, err
}

func (r *MemoryRepo) GetSites() (sites []model.Site, err error) {
	err = r.locked(func(v *memView) error { sites, err = v.GetSites(); return err })
	return sites, err
}

func (r *MemoryRepo) RemoveSite(siteID string) error {
	return r.locked(func(v *memView) error { return v.RemoveSite(siteID) })
}

func (r *MemoryRepo) AddUser(user model.User) error {
	return r.locked(func(v *memView) error { return v.AddUser(user) })
}

func (r *MemoryRepo) GetUserByID(userID string) (user model.User, err error) {
	err = r.locked(func(v *memView) error { user, err = v.GetUserByID(userID); return err })
	return user, err
}

func (r *MemoryRepo) GetUserByUsername(siteID, username string) (user model.User, err error) {
	err = r.locked(func(v *memView) error { user, err = v.GetUserByUsername(siteID, username); return err })
	return user, err
}

func (r *MemoryRepo) GetUsersBySite(siteID string) (users []model.User, err error) {
	err = r.locked(func(v *memView) error { users, err = v.GetUsersBySite(siteID); return err })
	return users, err
}

func (r *MemoryRepo) RemoveUser(userID string) error {
	return r.locked(func(v *memView) error { return v.RemoveUser(userID) })
}

func (r *MemoryRepo) AddSession(session model.Session) error {
	return r.locked(func(v *memView) error { return v.AddSession(session) })
}

func (r *MemoryRepo) GetSession(sessionID string) (session model.Session, err error) {
	err = r.locked(func(v *memView) error { session, err = v.GetSession(sessionID); return err })
	return session, err
}

func (r *MemoryRepo) GetSessionByUser(userID string) (session model.Session, err error) {
	err = r.locked(func(v *memView) error { session, err = v.GetSessionByUser(userID); return err })
	return session, err
}

func (r *MemoryRepo) GetSessionsBySite(siteID string) (sessions []model.Session, err error) {
	err = r.locked(func(v *memView) error { sessions, err = v.GetSessionsBySite(siteID); return err })
	return sessions, err
}

func (r *MemoryRepo) SetSessionValidUntil(sessionID string, validUntil time.Time) error {
	return r.locked(func(v *memView) error { return v.SetSessionValidUntil(sessionID, validUntil) })
}

func (r *MemoryRepo) RemoveSession(sessionID string) error {
	return r.locked(func(v *memView) error { return v.RemoveSession(sessionID) })
}

func (r *MemoryRepo) RemoveExpiredSessions(siteID string, cutoff time.Time) (n int, err error) {
	err = r.locked(func(v *memView) error { n, err = v.RemoveExpiredSessions(siteID, cutoff); return err })
	return n, err
}

func (r *MemoryRepo) AddAuction(auction model.Auction) error {
	return r.locked(func(v *memView) error { return v.AddAuction(auction) })
}

func (r *MemoryRepo) GetAuction(auctionID string) (auction model.Auction, err error) {
	err = r.locked(func(v *memView) error { auction, err = v.GetAuction(auctionID); return err })
	return auction, err
}

func (r *MemoryRepo) GetAuctionsBySite(siteID string) (auctions []model.Auction, err error) {
	err = r.locked(func(v *memView) error { auctions, err = v.GetAuctionsBySite(siteID); return err })
	return auctions, err
}

func (r *MemoryRepo) GetAuctionsByWinner(userID string) (auctions []model.Auction, err error) {
	err = r.locked(func(v *memView) error { auctions, err = v.GetAuctionsByWinner(userID); return err })
	return auctions, err
}

func (r *MemoryRepo) UpdateAuction(auction model.Auction) error {
	return r.locked(func(v *memView) error { return v.UpdateAuction(auction) })
}

func (r *MemoryRepo) RemoveAuction(auctionID string) error {
	return r.locked(func(v *memView) error { return v.RemoveAuction(auctionID) })
}

func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	return r.locked(func(v *memView) error { return v.RecordBid(bid) })
}

func (r *MemoryRepo) GetBidsByAuction(auctionID string) (bids []model.Bid, err error) {
	err = r.locked(func(v *memView) error { bids, err = v.GetBidsByAuction(auctionID); return err })
	return bids, err
}

func (r *MemoryRepo) locked(fn func(v *memView) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(&memView{data: r.data})
}

// memView implements AuctionDB directly over the shared data, without
// locking. MemoryRepo hands it out while holding the mutex.
type memView struct {
	data *memoryData
}

// InTransaction inside an open transaction simply joins it.
func (v *memView) InTransaction(fn func(tx AuctionDB) error) error {
	return fn(v)
}

func (v *memView) AddSite(site model.Site) error {
	for _, s := range v.data.sites {
		if s.Name == site.Name {
			return fmt.Errorf("add site %q: %w", site.Name, auctionerrors.ErrNameAlreadyInUse)
		}
	}
	v.data.sites[site.SiteID] = site
	return nil
}

func (v *memView) GetSiteByID(siteID string) (model.Site, error) {
	site, ok := v.data.sites[siteID]
	if !ok {
		return model.Site{}, fmt.Errorf("get site %s: %w", siteID, auctionerrors.ErrNotFound)
	}
	return site, nil
}

func (v *memView) GetSiteByName(name string) (model.Site, error) {
	for _, s := range v.data.sites {
		if s.Name == name {
			return s, nil
		}
	}
	return model.Site{}, fmt.Errorf("get site %q: %w", name, auctionerrors.ErrNotFound)
}

func (v *memView) GetSites() ([]model.Site, error) {
	sites := make([]model.Site, 0, len(v.data.sites))
	for _, s := range v.data.sites {
		sites = append(sites, s)
	}
	sort.Slice(sites, func(i, j int) bool { return sites[i].Name < sites[j].Name })
	return sites, nil
}

func (v *memView) RemoveSite(siteID string) error {
	if _, ok := v.data.sites[siteID]; !ok {
		return fmt.Errorf("remove site %s: %w", siteID, auctionerrors.ErrNotFound)
	}
	delete(v.data.sites, siteID)
	for id, u := range v.data.users {
		if u.SiteID == siteID {
			delete(v.data.users, id)
		}
	}
	for id, s := range v.data.sessions {
		if s.SiteID == siteID {
			delete(v.data.sessions, id)
		}
	}
	for id, a := range v.data.auctions {
		if a.SiteID == siteID {
			delete(v.data.auctions, id)
			delete(v.data.bids, id)
		}
	}
	return nil
}

func (v *memView) AddUser(user model.User) error {
	for _, u := range v.data.users {
		if u.SiteID == user.SiteID && u.Username == user.Username {
			return fmt.Errorf("add user %q: %w", user.Username, auctionerrors.ErrNameAlreadyInUse)
		}
	}
	v.data.users[user.UserID] = user
	return nil
}

func (v *memView) GetUserByID(userID string) (model.User, error) {
	user, ok := v.data.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrNotFound)
	}
	return user, nil
}

func (v *memView) GetUserByUsername(siteID, username string) (model.User, error) {
	for _, u := range v.data.users {
		if u.SiteID == siteID && u.Username == username {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user %q: %w", username, auctionerrors.ErrNotFound)
}

func (v *memView) GetUsersBySite(siteID string) ([]model.User, error) {
	var users []model.User
	for _, u := range v.data.users {
		if u.SiteID == siteID {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (v *memView) RemoveUser(userID string) error {
	if _, ok := v.data.users[userID]; !ok {
		return fmt.Errorf("remove user %s: %w", userID, auctionerrors.ErrNotFound)
	}
	delete(v.data.users, userID)
	for id, s := range v.data.sessions {
		if s.UserID == userID {
			delete(v.data.sessions, id)
		}
	}
	// History survives the account: winner and bidder references go nil.
	for id, a := range v.data.auctions {
		if a.WinnerID != nil && *a.WinnerID == userID {
			a.WinnerID = nil
			v.data.auctions[id] = a
		}
	}
	for auctionID, bids := range v.data.bids {
		for i, b := range bids {
			if b.UserID != nil && *b.UserID == userID {
				bids[i].UserID = nil
			}
		}
		v.data.bids[auctionID] = bids
	}
	return nil
}

func (v *memView) AddSession(session model.Session) error {
	for _, s := range v.data.sessions {
		if s.UserID == session.UserID {
			return fmt.Errorf("add session for user %s: %w", session.UserID, auctionerrors.ErrConcurrentModification)
		}
	}
	v.data.sessions[session.SessionID] = session
	return nil
}

func (v *memView) GetSession(sessionID string) (model.Session, error) {
	session, ok := v.data.sessions[sessionID]
	if !ok {
		return model.Session{}, fmt.Errorf("get session %s: %w", sessionID, auctionerrors.ErrNotFound)
	}
	return session, nil
}

func (v *memView) GetSessionByUser(userID string) (model.Session, error) {
	for _, s := range v.data.sessions {
		if s.UserID == userID {
			return s, nil
		}
	}
	return model.Session{}, fmt.Errorf("get session for user %s: %w", userID, auctionerrors.ErrNotFound)
}

func (v *memView) GetSessionsBySite(siteID string) ([]model.Session, error) {
	var sessions []model.Session
	for _, s := range v.data.sessions {
		if s.SiteID == siteID {
			sessions = append(sessions, s)
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].SessionID < sessions[j].SessionID })
	return sessions, nil
}

func (v *memView) SetSessionValidUntil(sessionID string, validUntil time.Time) error {
	session, ok := v.data.sessions[sessionID]
	if !ok {
		return fmt.Errorf("update session %s: %w", sessionID, auctionerrors.ErrNotFound)
	}
	session.ValidUntil = validUntil
	v.data.sessions[sessionID] = session
	return nil
}

func (v *memView) RemoveSession(sessionID string) error {
	if _, ok := v.data.sessions[sessionID]; !ok {
		return fmt.Errorf("remove session %s: %w", sessionID, auctionerrors.ErrNotFound)
	}
	delete(v.data.sessions, sessionID)
	return nil
}

func (v *memView) RemoveExpiredSessions(siteID string, cutoff time.Time) (int, error) {
	n := 0
	for id, s := range v.data.sessions {
		if s.SiteID == siteID && !s.ValidUntil.After(cutoff) {
			delete(v.data.sessions, id)
			n++
		}
	}
	return n, nil
}

func (v *memView) AddAuction(auction model.Auction) error {
	v.data.auctions[auction.AuctionID] = auction
	return nil
}

func (v *memView) GetAuction(auctionID string) (model.Auction, error) {
	auction, ok := v.data.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	return auction, nil
}

func (v *memView) GetAuctionsBySite(siteID string) ([]model.Auction, error) {
	var auctions []model.Auction
	for _, a := range v.data.auctions {
		if a.SiteID == siteID {
			auctions = append(auctions, a)
		}
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].AuctionID < auctions[j].AuctionID })
	return auctions, nil
}

func (v *memView) GetAuctionsByWinner(userID string) ([]model.Auction, error) {
	var auctions []model.Auction
	for _, a := range v.data.auctions {
		if a.WinnerID != nil && *a.WinnerID == userID {
			auctions = append(auctions, a)
		}
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].AuctionID < auctions[j].AuctionID })
	return auctions, nil
}

func (v *memView) UpdateAuction(auction model.Auction) error {
	if _, ok := v.data.auctions[auction.AuctionID]; !ok {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, auctionerrors.ErrNotFound)
	}
	v.data.auctions[auction.AuctionID] = auction
	return nil
}

func (v *memView) RemoveAuction(auctionID string) error {
	if _, ok := v.data.auctions[auctionID]; !ok {
		return fmt.Errorf("remove auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	delete(v.data.auctions, auctionID)
	delete(v.data.bids, auctionID)
	return nil
}

func (v *memView) RecordBid(bid model.Bid) error {
	if _, ok := v.data.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrNotFound)
	}
	for _, b := range v.data.bids[bid.AuctionID] {
		if sameBidder(b.UserID, bid.UserID) && b.PlacedAt.Equal(bid.PlacedAt) {
			return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrConcurrentModification)
		}
	}
	v.data.bids[bid.AuctionID] = append(v.data.bids[bid.AuctionID], bid)
	return nil
}

func (v *memView) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	bids := append([]model.Bid(nil), v.data.bids[auctionID]...)
	sort.SliceStable(bids, func(i, j int) bool { return bids[i].PlacedAt.Before(bids[j].PlacedAt) })
	return bids, nil
}

func sameBidder(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (d *memoryData) clone() *memoryData {
	c := &memoryData{
		sites:    make(map[string]model.Site, len(d.sites)),
		users:    make(map[string]model.User, len(d.users)),
		sessions: make(map[string]model.Session, len(d.sessions)),
		auctions: make(map[string]model.Auction, len(d.auctions)),
		bids:     make(map[string][]model.Bid, len(d.bids)),
	}
	for id, s := range d.sites {
		c.sites[id] = s
	}
	for id, u := range d.users {
		c.users[id] = u
	}
	for id, s := range d.sessions {
		c.sessions[id] = s
	}
	for id, a := range d.auctions {
		c.auctions[id] = a
	}
	for id, bids := range d.bids {
		c.bids[id] = append([]model.Bid(nil), bids...)
	}
	return c
}
