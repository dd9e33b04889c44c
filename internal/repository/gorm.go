package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"auction-site/internal/auctionerrors"
	model "auction-site/internal/models"
)

// GormRepo is the SQL implementation of AuctionDB. Uniqueness lives in the
// schema (unique indexes on site name, per-site username and the bid tuple);
// cascade semantics are applied explicitly so behavior does not depend on the
// dialect's foreign-key handling.
type GormRepo struct {
	db *gorm.DB
}

// OpenPostgres connects to PostgreSQL and migrates the schema.
func OpenPostgres(dsn string) (*GormRepo, error) {
	return openGorm(postgres.Open(dsn))
}

// OpenSQLite opens a SQLite database (":memory:" works for tests) and
// migrates the schema.
func OpenSQLite(dsn string) (*GormRepo, error) {
	return openGorm(sqlite.Open(dsn))
}

func openGorm(dialector gorm.Dialector) (*GormRepo, error) {
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w: %v", auctionerrors.ErrUnavailable, err)
	}
	err = db.AutoMigrate(&model.Site{}, &model.User{}, &model.Session{}, &model.Auction{}, &model.Bid{})
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w: %v", auctionerrors.ErrUnavailable, err)
	}
	return &GormRepo{db: db}, nil
}

// InTransaction wraps fn in a database transaction. Errors returned by fn
// pass through untranslated; nested calls join the outer transaction.
func (r *GormRepo) InTransaction(fn func(tx AuctionDB) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{db: tx})
	})
}

func (r *GormRepo) AddSite(site model.Site) error {
	return wrapDBErr(fmt.Sprintf("add site %q", site.Name), r.db.Create(&site).Error)
}

func (r *GormRepo) GetSiteByID(siteID string) (model.Site, error) {
	var site model.Site
	err := r.db.First(&site, "site_id = ?", siteID).Error
	return site, wrapDBErr(fmt.Sprintf("get site %s", siteID), err)
}

func (r *GormRepo) GetSiteByName(name string) (model.Site, error) {
	var site model.Site
	err := r.db.First(&site, "name = ?", name).Error
	return site, wrapDBErr(fmt.Sprintf("get site %q", name), err)
}

func (r *GormRepo) GetSites() ([]model.Site, error) {
	var sites []model.Site
	err := r.db.Order("name").Find(&sites).Error
	return sites, wrapDBErr("list sites", err)
}

func (r *GormRepo) RemoveSite(siteID string) error {
	op := fmt.Sprintf("remove site %s", siteID)

	auctionIDs := r.db.Model(&model.Auction{}).Select("auction_id").Where("site_id = ?", siteID)
	if err := r.db.Where("auction_id IN (?)", auctionIDs).Delete(&model.Bid{}).Error; err != nil {
		return wrapDBErr(op, err)
	}
	if err := r.db.Where("site_id = ?", siteID).Delete(&model.Auction{}).Error; err != nil {
		return wrapDBErr(op, err)
	}
	if err := r.db.Where("site_id = ?", siteID).Delete(&model.Session{}).Error; err != nil {
		return wrapDBErr(op, err)
	}
	if err := r.db.Where("site_id = ?", siteID).Delete(&model.User{}).Error; err != nil {
		return wrapDBErr(op, err)
	}

	res := r.db.Where("site_id = ?", siteID).Delete(&model.Site{})
	if res.Error != nil {
		return wrapDBErr(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, auctionerrors.ErrNotFound)
	}
	return nil
}

func (r *GormRepo) AddUser(user model.User) error {
	return wrapDBErr(fmt.Sprintf("add user %q", user.Username), r.db.Create(&user).Error)
}

func (r *GormRepo) GetUserByID(userID string) (model.User, error) {
	var user model.User
	err := r.db.First(&user, "user_id = ?", userID).Error
	return user, wrapDBErr(fmt.Sprintf("get user %s", userID), err)
}

func (r *GormRepo) GetUserByUsername(siteID, username string) (model.User, error) {
	var user model.User
	err := r.db.First(&user, "site_id = ? AND username = ?", siteID, username).Error
	return user, wrapDBErr(fmt.Sprintf("get user %q", username), err)
}

func (r *GormRepo) GetUsersBySite(siteID string) ([]model.User, error) {
	var users []model.User
	err := r.db.Where("site_id = ?", siteID).Order("username").Find(&users).Error
	return users, wrapDBErr(fmt.Sprintf("list users of site %s", siteID), err)
}

func (r *GormRepo) RemoveUser(userID string) error {
	op := fmt.Sprintf("remove user %s", userID)

	if err := r.db.Where("user_id = ?", userID).Delete(&model.Session{}).Error; err != nil {
		return wrapDBErr(op, err)
	}
	// Auction history outlives the account.
	err := r.db.Model(&model.Auction{}).Where("winner_id = ?", userID).Update("winner_id", nil).Error
	if err != nil {
		return wrapDBErr(op, err)
	}
	err = r.db.Model(&model.Bid{}).Where("user_id = ?", userID).Update("user_id", nil).Error
	if err != nil {
		return wrapDBErr(op, err)
	}

	res := r.db.Where("user_id = ?", userID).Delete(&model.User{})
	if res.Error != nil {
		return wrapDBErr(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, auctionerrors.ErrNotFound)
	}
	return nil
}

func (r *GormRepo) AddSession(session model.Session) error {
	err := r.db.Create(&session).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The one-session-per-user index tripped: somebody else logged this
		// user in between our read and write.
		return fmt.Errorf("add session for user %s: %w", session.UserID, auctionerrors.ErrConcurrentModification)
	}
	return wrapDBErr(fmt.Sprintf("add session for user %s", session.UserID), err)
}

func (r *GormRepo) GetSession(sessionID string) (model.Session, error) {
	var session model.Session
	err := r.db.First(&session, "session_id = ?", sessionID).Error
	return session, wrapDBErr(fmt.Sprintf("get session %s", sessionID), err)
}

func (r *GormRepo) GetSessionByUser(userID string) (model.Session, error) {
	var session model.Session
	err := r.db.First(&session, "user_id = ?", userID).Error
	return session, wrapDBErr(fmt.Sprintf("get session for user %s", userID), err)
}

func (r *GormRepo) GetSessionsBySite(siteID string) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.Where("site_id = ?", siteID).Order("session_id").Find(&sessions).Error
	return sessions, wrapDBErr(fmt.Sprintf("list sessions of site %s", siteID), err)
}

func (r *GormRepo) SetSessionValidUntil(sessionID string, validUntil time.Time) error {
	res := r.db.Model(&model.Session{}).Where("session_id = ?", sessionID).Update("valid_until", validUntil)
	if res.Error != nil {
		return wrapDBErr(fmt.Sprintf("update session %s", sessionID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update session %s: %w", sessionID, auctionerrors.ErrNotFound)
	}
	return nil
}

func (r *GormRepo) RemoveSession(sessionID string) error {
	res := r.db.Where("session_id = ?", sessionID).Delete(&model.Session{})
	if res.Error != nil {
		return wrapDBErr(fmt.Sprintf("remove session %s", sessionID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("remove session %s: %w", sessionID, auctionerrors.ErrNotFound)
	}
	return nil
}

func (r *GormRepo) RemoveExpiredSessions(siteID string, cutoff time.Time) (int, error) {
	res := r.db.Where("site_id = ? AND valid_until <= ?", siteID, cutoff).Delete(&model.Session{})
	if res.Error != nil {
		return 0, wrapDBErr(fmt.Sprintf("remove expired sessions of site %s", siteID), res.Error)
	}
	return int(res.RowsAffected), nil
}

func (r *GormRepo) AddAuction(auction model.Auction) error {
	return wrapDBErr(fmt.Sprintf("add auction %s", auction.AuctionID), r.db.Create(&auction).Error)
}

func (r *GormRepo) GetAuction(auctionID string) (model.Auction, error) {
	var auction model.Auction
	err := r.db.First(&auction, "auction_id = ?", auctionID).Error
	return auction, wrapDBErr(fmt.Sprintf("get auction %s", auctionID), err)
}

func (r *GormRepo) GetAuctionsBySite(siteID string) ([]model.Auction, error) {
	var auctions []model.Auction
	err := r.db.Where("site_id = ?", siteID).Order("auction_id").Find(&auctions).Error
	return auctions, wrapDBErr(fmt.Sprintf("list auctions of site %s", siteID), err)
}

func (r *GormRepo) GetAuctionsByWinner(userID string) ([]model.Auction, error) {
	var auctions []model.Auction
	err := r.db.Where("winner_id = ?", userID).Order("auction_id").Find(&auctions).Error
	return auctions, wrapDBErr(fmt.Sprintf("list auctions won by user %s", userID), err)
}

func (r *GormRepo) UpdateAuction(auction model.Auction) error {
	op := fmt.Sprintf("update auction %s", auction.AuctionID)
	res := r.db.Model(&model.Auction{}).Where("auction_id = ?", auction.AuctionID).Updates(map[string]any{
		"winner_id":     auction.WinnerID,
		"current_price": auction.CurrentPrice,
		"max_offer":     auction.MaxOffer,
	})
	if res.Error != nil {
		return wrapDBErr(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, auctionerrors.ErrNotFound)
	}
	return nil
}

func (r *GormRepo) RemoveAuction(auctionID string) error {
	op := fmt.Sprintf("remove auction %s", auctionID)

	if err := r.db.Where("auction_id = ?", auctionID).Delete(&model.Bid{}).Error; err != nil {
		return wrapDBErr(op, err)
	}
	res := r.db.Where("auction_id = ?", auctionID).Delete(&model.Auction{})
	if res.Error != nil {
		return wrapDBErr(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, auctionerrors.ErrNotFound)
	}
	return nil
}

func (r *GormRepo) RecordBid(bid model.Bid) error {
	err := r.db.Create(&bid).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrConcurrentModification)
	}
	return wrapDBErr(fmt.Sprintf("record bid for auction %s", bid.AuctionID), err)
}

func (r *GormRepo) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	var bids []model.Bid
	err := r.db.Where("auction_id = ?", auctionID).Order("placed_at").Find(&bids).Error
	return bids, wrapDBErr(fmt.Sprintf("list bids of auction %s", auctionID), err)
}

// wrapDBErr maps gorm's translated errors onto the engine error kinds. Any
// error the driver cannot classify counts as the store being unavailable.
func wrapDBErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, auctionerrors.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, auctionerrors.ErrNameAlreadyInUse)
	default:
		return fmt.Errorf("%s: %w: %v", op, auctionerrors.ErrUnavailable, err)
	}
}
