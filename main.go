package main

import (
	"fmt"
	"os"
	"time"

	"auction-site/internal/clock"
	"auction-site/internal/marketplace"
	"auction-site/internal/repository"
	"auction-site/utils"
)

func main() {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open repository: %v\n", err)
		os.Exit(1)
	}

	host := marketplace.NewHost(repo, clock.SystemFactory{})
	if err := runDemo(host); err != nil {
		fmt.Fprintf(os.Stderr, "Demo failed: %v\n", err)
		os.Exit(1)
	}
}

// openRepository picks the store from the environment: a PostgreSQL DSN in
// AUCTION_DB_DSN, a SQLite path in AUCTION_DB_PATH, or in-memory by default.
func openRepository() (repository.AuctionDB, error) {
	if dsn := os.Getenv("AUCTION_DB_DSN"); dsn != "" {
		return repository.OpenPostgres(dsn)
	}
	if path := os.Getenv("AUCTION_DB_PATH"); path != "" {
		return repository.OpenSQLite(path)
	}
	return repository.NewMemoryRepo(), nil
}

// runDemo walks one scripted auction through the engine: a site, three
// accounts, a bidding war and the final standing.
func runDemo(host *marketplace.Host) error {
	siteName := fmt.Sprintf("demo-%d", time.Now().Unix())
	if err := host.CreateSite(siteName, 0, 600, 10); err != nil {
		return err
	}
	site, err := host.LoadSite(siteName)
	if err != nil {
		return err
	}
	defer site.Delete()

	for _, username := range []string{"seller", "alice", "bob"} {
		if err := site.CreateUser(username, "password-"+username); err != nil {
			return err
		}
	}

	seller, err := site.Login("seller", "password-seller")
	if err != nil {
		return err
	}
	alice, err := site.Login("alice", "password-alice")
	if err != nil {
		return err
	}
	bob, err := site.Login("bob", "password-bob")
	if err != nil {
		return err
	}

	auction, err := seller.CreateAuction("signed first edition", site.Now().Add(time.Hour), 100)
	if err != nil {
		return err
	}

	for _, step := range []struct {
		session *marketplace.Session
		offer   float64
	}{
		{alice, 100},
		{bob, 150},
		{alice, 400},
	} {
		accepted, err := auction.Bid(step.session, step.offer)
		if err != nil {
			return err
		}
		price, err := auction.CurrentPrice()
		if err != nil {
			return err
		}
		utils.Info("bid placed", map[string]any{
			"bidder":        step.session.User().Username(),
			"offer":         step.offer,
			"accepted":      accepted,
			"current_price": price,
		})
		time.Sleep(10 * time.Millisecond)
	}

	winner, err := auction.CurrentWinner()
	if err != nil {
		return err
	}
	price, err := auction.CurrentPrice()
	if err != nil {
		return err
	}
	utils.Info("auction standing", map[string]any{
		"auction":       auction.Description(),
		"winner":        winner.Username(),
		"current_price": price,
	})
	return nil
}
