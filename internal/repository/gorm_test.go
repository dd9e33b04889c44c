package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auction-site/internal/auctionerrors"
	model "auction-site/internal/models"
)

func openTestDB(t *testing.T) *GormRepo {
	t.Helper()
	// A named in-memory database with shared cache: every pooled connection
	// sees the same data, and every test gets its own database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	repo, err := OpenSQLite(dsn)
	require.NoError(t, err)
	return repo
}

func TestGormRepo_SiteNameUnique(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	require.NoError(t, repo.AddSite(newSite("site1", "site-one")))

	err := repo.AddSite(newSite("site2", "site-one"))
	require.ErrorIs(t, err, auctionerrors.ErrNameAlreadyInUse)

	stored, err := repo.GetSiteByName("site-one")
	require.NoError(t, err)
	require.Equal(t, "site1", stored.SiteID)
	require.Equal(t, 600, stored.SessionExpirationSeconds)
	require.Equal(t, 10.0, stored.MinimumBidIncrement)

	_, err = repo.GetSiteByName("no-such-site")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}

func TestGormRepo_UsernameUniquePerSite(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	require.NoError(t, repo.AddSite(newSite("site1", "site-one")))
	require.NoError(t, repo.AddSite(newSite("site2", "site-two")))
	require.NoError(t, repo.AddUser(newUser("user1", "site1", "alice")))

	err := repo.AddUser(newUser("user2", "site1", "alice"))
	require.ErrorIs(t, err, auctionerrors.ErrNameAlreadyInUse)

	require.NoError(t, repo.AddUser(newUser("user3", "site2", "alice")), "same username on another site")
}

func TestGormRepo_OneSessionPerUser(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	require.NoError(t, repo.AddSite(newSite("site1", "site-one")))
	require.NoError(t, repo.AddUser(newUser("user1", "site1", "alice")))
	require.NoError(t, repo.AddSession(newSession("sess1", "site1", "user1", repoNow.Add(time.Minute))))

	err := repo.AddSession(newSession("sess2", "site1", "user1", repoNow.Add(time.Hour)))
	require.ErrorIs(t, err, auctionerrors.ErrConcurrentModification)

	require.NoError(t, repo.SetSessionValidUntil("sess1", repoNow.Add(2*time.Minute)))
	stored, err := repo.GetSession("sess1")
	require.NoError(t, err)
	require.True(t, stored.ValidUntil.Equal(repoNow.Add(2*time.Minute)))

	err = repo.SetSessionValidUntil("sessX", repoNow)
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}

func TestGormRepo_RemoveExpiredSessions(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	require.NoError(t, repo.AddSite(newSite("site1", "site-one")))
	require.NoError(t, repo.AddSite(newSite("site2", "site-two")))
	for _, s := range []model.Session{
		newSession("sess1", "site1", "user1", repoNow.Add(-time.Minute)),
		newSession("sess2", "site1", "user2", repoNow),
		newSession("sess3", "site1", "user3", repoNow.Add(time.Minute)),
		newSession("sess4", "site2", "user4", repoNow.Add(-time.Hour)),
	} {
		require.NoError(t, repo.AddSession(s))
	}

	n, err := repo.RemoveExpiredSessions("site1", repoNow)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = repo.GetSession("sess3")
	require.NoError(t, err)
	_, err = repo.GetSession("sess4")
	require.NoError(t, err)
}

func TestGormRepo_BidUniquePerBidderAndInstant(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	require.NoError(t, repo.AddSite(newSite("site1", "site-one")))
	require.NoError(t, repo.AddUser(newUser("user1", "site1", "alice")))
	require.NoError(t, repo.AddAuction(newAuction("auc1", "site1", "user1", 100)))

	alice := "user1"
	require.NoError(t, repo.RecordBid(model.Bid{BidID: "bid1", AuctionID: "auc1", UserID: &alice, Offer: 100, PlacedAt: repoNow}))

	err := repo.RecordBid(model.Bid{BidID: "bid2", AuctionID: "auc1", UserID: &alice, Offer: 150, PlacedAt: repoNow})
	require.ErrorIs(t, err, auctionerrors.ErrConcurrentModification)

	require.NoError(t, repo.RecordBid(model.Bid{BidID: "bid3", AuctionID: "auc1", UserID: &alice, Offer: 150, PlacedAt: repoNow.Add(time.Second)}))

	bids, err := repo.GetBidsByAuction("auc1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, "bid1", bids[0].BidID)
	require.Equal(t, "bid3", bids[1].BidID)
}

func TestGormRepo_RemoveUserClearsReferences(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	require.NoError(t, repo.AddSite(newSite("site1", "site-one")))
	require.NoError(t, repo.AddUser(newUser("user1", "site1", "alice")))
	require.NoError(t, repo.AddUser(newUser("user2", "site1", "bob")))
	require.NoError(t, repo.AddSession(newSession("sess2", "site1", "user2", repoNow.Add(time.Hour))))

	auction := newAuction("auc1", "site1", "user1", 100)
	bob := "user2"
	auction.WinnerID = &bob
	require.NoError(t, repo.AddAuction(auction))
	require.NoError(t, repo.RecordBid(model.Bid{BidID: "bid1", AuctionID: "auc1", UserID: &bob, Offer: 100, PlacedAt: repoNow}))

	require.NoError(t, repo.RemoveUser("user2"))

	_, err := repo.GetUserByID("user2")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
	_, err = repo.GetSession("sess2")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	stored, err := repo.GetAuction("auc1")
	require.NoError(t, err)
	require.Nil(t, stored.WinnerID)

	bids, err := repo.GetBidsByAuction("auc1")
	require.NoError(t, err)
	require.Len(t, bids, 1)
	require.Nil(t, bids[0].UserID)

	err = repo.RemoveUser("user2")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}

func TestGormRepo_RemoveSiteCascades(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	require.NoError(t, repo.AddSite(newSite("site1", "site-one")))
	require.NoError(t, repo.AddUser(newUser("user1", "site1", "alice")))
	require.NoError(t, repo.AddSession(newSession("sess1", "site1", "user1", repoNow.Add(time.Hour))))
	require.NoError(t, repo.AddAuction(newAuction("auc1", "site1", "user1", 100)))
	alice := "user1"
	require.NoError(t, repo.RecordBid(model.Bid{BidID: "bid1", AuctionID: "auc1", UserID: &alice, Offer: 100, PlacedAt: repoNow}))

	require.NoError(t, repo.RemoveSite("site1"))

	_, err := repo.GetUserByID("user1")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
	_, err = repo.GetSession("sess1")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
	_, err = repo.GetAuction("auc1")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
	bids, err := repo.GetBidsByAuction("auc1")
	require.NoError(t, err)
	require.Empty(t, bids)

	err = repo.RemoveSite("site1")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}

func TestGormRepo_TransactionRollsBackOnError(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	require.NoError(t, repo.AddSite(newSite("site1", "site-one")))
	require.NoError(t, repo.AddUser(newUser("user1", "site1", "alice")))
	boom := errors.New("boom")

	err := repo.InTransaction(func(tx AuctionDB) error {
		if err := tx.AddUser(newUser("user2", "site1", "bob")); err != nil {
			return err
		}
		if err := tx.RemoveUser("user1"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.GetUserByID("user1")
	require.NoError(t, err)
	_, err = repo.GetUserByID("user2")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}

func TestGormRepo_UpdateAuction(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	require.NoError(t, repo.AddSite(newSite("site1", "site-one")))
	require.NoError(t, repo.AddUser(newUser("user1", "site1", "alice")))
	require.NoError(t, repo.AddAuction(newAuction("auc1", "site1", "user1", 100)))

	winner := "user1"
	auction, err := repo.GetAuction("auc1")
	require.NoError(t, err)
	auction.CurrentPrice = 110
	auction.MaxOffer = 150
	auction.WinnerID = &winner
	require.NoError(t, repo.UpdateAuction(auction))

	stored, err := repo.GetAuction("auc1")
	require.NoError(t, err)
	require.Equal(t, 110.0, stored.CurrentPrice)
	require.Equal(t, 150.0, stored.MaxOffer)
	require.Equal(t, "user1", *stored.WinnerID)

	won, err := repo.GetAuctionsByWinner("user1")
	require.NoError(t, err)
	require.Len(t, won, 1)

	err = repo.UpdateAuction(newAuction("aucX", "site1", "user1", 100))
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}
