package integrationtests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auction-site/internal/auctionerrors"
	"auction-site/internal/clock"
)

var start = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// Tests the full tenant lifecycle against the SQL store: site creation,
// accounts, sessions, an auction with a bidding war, session expiry through
// the background sweep, and teardown.
func TestMarketplaceLifecycle(t *testing.T) {
	manual := clock.NewManual(start)
	host, repo := setupHost(t, manual)

	require.NoError(t, host.CreateSite("collectors-corner", 0, 600, 10))
	site, err := host.LoadSite("collectors-corner")
	require.NoError(t, err)
	defer site.Delete()

	infos, err := host.SiteInfos()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "collectors-corner", infos[0].Name)

	for _, username := range []string{"seller", "alice", "bob"} {
		require.NoError(t, site.CreateUser(username, "password-"+username))
	}

	seller, err := site.Login("seller", "password-seller")
	require.NoError(t, err)
	alice, err := site.Login("alice", "password-alice")
	require.NoError(t, err)
	bob, err := site.Login("bob", "password-bob")
	require.NoError(t, err)

	none, err := site.Login("alice", "not-her-password")
	require.NoError(t, err)
	require.Nil(t, none)

	auction, err := seller.CreateAuction("signed first edition", manual.Now().Add(time.Hour), 100)
	require.NoError(t, err)

	// The bidding war. Distinct instants keep every accepted bid recorded.
	manual.Advance(time.Second)
	accepted, err := auction.Bid(alice, 100)
	require.NoError(t, err)
	require.True(t, accepted)

	manual.Advance(time.Second)
	accepted, err = auction.Bid(bob, 150)
	require.NoError(t, err)
	require.True(t, accepted)

	price, err := auction.CurrentPrice()
	require.NoError(t, err)
	require.Equal(t, 110.0, price)
	winner, err := auction.CurrentWinner()
	require.NoError(t, err)
	require.Equal(t, "bob", winner.Username())

	manual.Advance(time.Second)
	accepted, err = auction.Bid(alice, 115)
	require.NoError(t, err)
	require.False(t, accepted, "below the visible price plus increment")

	manual.Advance(time.Second)
	accepted, err = auction.Bid(alice, 400)
	require.NoError(t, err)
	require.True(t, accepted)

	price, err = auction.CurrentPrice()
	require.NoError(t, err)
	require.Equal(t, 160.0, price)
	winner, err = auction.CurrentWinner()
	require.NoError(t, err)
	require.Equal(t, "alice", winner.Username())

	// Seller logs out and takes no further part; the bidders stay active
	// through their bids, so only the seller's session is swept.
	require.NoError(t, seller.Logout())

	manual.Advance(time.Hour)

	sessions, err := site.Sessions()
	require.NoError(t, err)
	require.Empty(t, sessions, "everyone idle past the window is swept")

	// The auction is over: alice takes it at the standing price.
	won, err := winner.WonAuctions()
	require.NoError(t, err)
	require.Len(t, won, 1)
	require.True(t, won[0].Equal(auction))

	open, err := site.Auctions(true)
	require.NoError(t, err)
	require.Empty(t, open)

	require.NoError(t, site.Delete())
	_, err = site.Users()
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	_, err = repo.GetSiteByName("collectors-corner")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}

// Tests that two tenants on the same store cannot see each other's users or
// auctions.
func TestMarketplaceTenantIsolation(t *testing.T) {
	manual := clock.NewManual(start)
	host, _ := setupHost(t, manual)

	require.NoError(t, host.CreateSite("antiques", -5, 600, 10))
	require.NoError(t, host.CreateSite("vinyl", 9, 600, 5))

	antiques, err := host.LoadSite("antiques")
	require.NoError(t, err)
	defer antiques.Delete()
	vinyl, err := host.LoadSite("vinyl")
	require.NoError(t, err)
	defer vinyl.Delete()

	require.NoError(t, antiques.CreateUser("alice", "s3cret"))
	require.NoError(t, vinyl.CreateUser("alice", "s3cret"))

	session, err := antiques.Login("alice", "s3cret")
	require.NoError(t, err)
	auction, err := session.CreateAuction("victorian desk", manual.Now().Add(time.Hour), 300)
	require.NoError(t, err)

	// A session from the other tenant cannot bid here.
	intruder, err := vinyl.Login("alice", "s3cret")
	require.NoError(t, err)
	_, err = auction.Bid(intruder, 400)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidArgument)

	vinylAuctions, err := vinyl.Auctions(false)
	require.NoError(t, err)
	require.Empty(t, vinylAuctions)

	users, err := antiques.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
}

// Tests that expiry follows each tenant's own window.
func TestMarketplaceSessionExpiryPerTenant(t *testing.T) {
	manual := clock.NewManual(start)
	host, _ := setupHost(t, manual)

	require.NoError(t, host.CreateSite("patient", 0, 3600, 10))
	require.NoError(t, host.CreateSite("hasty", 0, 60, 10))

	patient, err := host.LoadSite("patient")
	require.NoError(t, err)
	defer patient.Delete()
	hasty, err := host.LoadSite("hasty")
	require.NoError(t, err)
	defer hasty.Delete()

	require.NoError(t, patient.CreateUser("alice", "s3cret"))
	require.NoError(t, hasty.CreateUser("alice", "s3cret"))
	slow, err := patient.Login("alice", "s3cret")
	require.NoError(t, err)
	quick, err := hasty.Login("alice", "s3cret")
	require.NoError(t, err)

	manual.Advance(10 * time.Minute)

	remaining, err := patient.Sessions()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.True(t, remaining[0].Equal(slow))

	gone, err := hasty.Sessions()
	require.NoError(t, err)
	require.Empty(t, gone)

	_, err = quick.CreateAuction("too late", manual.Now().Add(time.Hour), 10)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidOperation)
}
