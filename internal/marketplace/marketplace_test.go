package marketplace

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auction-site/internal/clock"
	"auction-site/internal/repository"
)

var testStart = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// fixture wires a host, one site and a manual clock over the in-memory
// repository.
type fixture struct {
	t     *testing.T
	host  *Host
	clock *clock.Manual
	db    *repository.MemoryRepo
	site  *Site
}

type siteConfig struct {
	name              string
	timezone          int
	expirationSeconds int
	increment         float64
}

func defaultSiteConfig() siteConfig {
	return siteConfig{name: "collectors-corner", timezone: 0, expirationSeconds: 600, increment: 10}
}

// newFixture builds the default test site
func newFixture(t *testing.T) *fixture {
	return newFixtureWith(t, defaultSiteConfig())
}

func newFixtureWith(t *testing.T, cfg siteConfig) *fixture {
	t.Helper()

	manual := clock.NewManual(testStart)
	db := repository.NewMemoryRepo()
	host := NewHost(db, clock.ManualFactory{Clock: manual})

	require.NoError(t, host.CreateSite(cfg.name, cfg.timezone, cfg.expirationSeconds, cfg.increment))
	site, err := host.LoadSite(cfg.name)
	require.NoError(t, err)
	t.Cleanup(site.stopSweep)

	return &fixture{t: t, host: host, clock: manual, db: db, site: site}
}

// registerAndLogin creates an account and returns a fresh session for it.
func (f *fixture) registerAndLogin(username string) *Session {
	f.t.Helper()

	require.NoError(f.t, f.site.CreateUser(username, "password-"+username))
	session, err := f.site.Login(username, "password-"+username)
	require.NoError(f.t, err)
	require.NotNil(f.t, session)
	return session
}

// sellAuction lists an auction ending after endsIn from now.
func (f *fixture) sellAuction(seller *Session, endsIn time.Duration, startingPrice float64) *Auction {
	f.t.Helper()

	auction, err := seller.CreateAuction(
		fmt.Sprintf("auction by %s", seller.User().Username()),
		f.clock.Now().Add(endsIn),
		startingPrice,
	)
	require.NoError(f.t, err)
	return auction
}

// bid advances time by a second (bids are unique per bidder and instant) and
// places the offer.
func (f *fixture) bid(auction *Auction, session *Session, offer float64) (bool, error) {
	f.t.Helper()

	f.clock.Advance(time.Second)
	return auction.Bid(session, offer)
}

// mustBid asserts the bid is accepted.
func (f *fixture) mustBid(auction *Auction, session *Session, offer float64) {
	f.t.Helper()

	accepted, err := f.bid(auction, session, offer)
	require.NoError(f.t, err)
	require.True(f.t, accepted, "expected offer %v to be accepted", offer)
}

// mustReject asserts the bid is rejected as too low, without error.
func (f *fixture) mustReject(auction *Auction, session *Session, offer float64) {
	f.t.Helper()

	accepted, err := f.bid(auction, session, offer)
	require.NoError(f.t, err)
	require.False(f.t, accepted, "expected offer %v to be rejected", offer)
}

// auctionState reads price, ceiling and winner straight from the store.
func (f *fixture) auctionState(auction *Auction) (currentPrice, maxOffer float64, winner *string) {
	f.t.Helper()

	stored, err := f.db.GetAuction(auction.ID())
	require.NoError(f.t, err)
	return stored.CurrentPrice, stored.MaxOffer, stored.WinnerID
}
