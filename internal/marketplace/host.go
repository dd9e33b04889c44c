package marketplace

import (
	"errors"
	"fmt"

	"auction-site/internal/auctionerrors"
	"auction-site/internal/clock"
	model "auction-site/internal/models"
	"auction-site/internal/repository"
	"auction-site/utils"
)

// Host is the tenant factory: it creates sites and hands out live Site
// handles with their expiry sweep armed.
type Host struct {
	db     repository.AuctionDB
	clocks clock.Factory
}

// NewHost creates a Host over the given persistence gateway and clock factory.
func NewHost(db repository.AuctionDB, clocks clock.Factory) *Host {
	return &Host{db: db, clocks: clocks}
}

// SiteInfo is the public summary of one tenant.
type SiteInfo struct {
	Name     string
	Timezone int
}

// CreateSite registers a new tenant. The name must be unused across the
// whole host; timezone is a whole-hour UTC offset.
func (h *Host) CreateSite(name string, timezone, sessionExpirationSeconds int, minimumBidIncrement float64) error {
	if name == "" {
		return fmt.Errorf("create site: name: %w", auctionerrors.ErrArgumentNull)
	}
	if len(name) < MinSiteNameLength || len(name) > MaxSiteNameLength {
		return fmt.Errorf("create site %q: invalid name length: %w", name, auctionerrors.ErrInvalidArgument)
	}
	if timezone < MinTimezone || timezone > MaxTimezone {
		return fmt.Errorf("create site %q: timezone %d: %w", name, timezone, auctionerrors.ErrOutOfRange)
	}
	if sessionExpirationSeconds < 0 {
		return fmt.Errorf("create site %q: session expiration must not be negative: %w", name, auctionerrors.ErrOutOfRange)
	}
	if minimumBidIncrement <= 0 {
		return fmt.Errorf("create site %q: minimum bid increment must be positive: %w", name, auctionerrors.ErrOutOfRange)
	}

	err := h.db.InTransaction(func(tx repository.AuctionDB) error {
		_, err := tx.GetSiteByName(name)
		if err == nil {
			return fmt.Errorf("create site %q: %w", name, auctionerrors.ErrNameAlreadyInUse)
		}
		if !errors.Is(err, auctionerrors.ErrNotFound) {
			return err
		}
		return tx.AddSite(model.Site{
			SiteID:                   utils.GenerateID(),
			Name:                     name,
			Timezone:                 timezone,
			SessionExpirationSeconds: sessionExpirationSeconds,
			MinimumBidIncrement:      minimumBidIncrement,
		})
	})
	if err != nil {
		return err
	}

	utils.Info("site created", map[string]any{"site": name, "timezone": timezone})
	return nil
}

// LoadSite returns a live handle for an existing site and starts its
// recurring expired-session sweep. The sweep stops when the site is deleted.
func (h *Host) LoadSite(name string) (*Site, error) {
	if name == "" {
		return nil, fmt.Errorf("load site: name: %w", auctionerrors.ErrArgumentNull)
	}
	if len(name) < MinSiteNameLength || len(name) > MaxSiteNameLength {
		return nil, fmt.Errorf("load site %q: invalid name length: %w", name, auctionerrors.ErrInvalidArgument)
	}

	stored, err := h.db.GetSiteByName(name)
	if err != nil {
		return nil, err
	}

	site := &Site{
		siteID:                   stored.SiteID,
		name:                     stored.Name,
		timezone:                 stored.Timezone,
		sessionExpirationSeconds: stored.SessionExpirationSeconds,
		minimumBidIncrement:      stored.MinimumBidIncrement,
		db:                       h.db,
		clock:                    h.clocks.AlarmClockForTimezone(stored.Timezone),
	}
	site.startSweep()
	return site, nil
}

// SiteInfos enumerates every tenant on this host.
func (h *Host) SiteInfos() ([]SiteInfo, error) {
	sites, err := h.db.GetSites()
	if err != nil {
		return nil, err
	}
	infos := make([]SiteInfo, 0, len(sites))
	for _, s := range sites {
		infos = append(infos, SiteInfo{Name: s.Name, Timezone: s.Timezone})
	}
	return infos, nil
}
