package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"forget/shared"
	"github.com/mattn/go-sqlite3"
	"sync"
	"time"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks forget/dal IRepo

type IRepo interface {
	InitUpdateDb()
	UpsertAccount(acct *Account) (isNew bool, err error)
	GetAccount(id string) (*Account, error)
	GetAccountsPage(offset, limit int) ([]*Account, int, error)
	AccountCount() (int, error)
	SetPolicy(id string, enabled bool, keepLatest int, keepFavs bool, deleteEvery, keepYounger time.Duration) error
	SetLastDelete(id string, when time.Time) error
	GetTokens(accountId string) ([]*OAuthToken, error)
	AddToken(token *OAuthToken) error
	DeleteToken(token string) error
	GetPosts(accountId string) ([]*Post, error)
	GetMostRecentPost(accountId string) (*Post, error)
	PostCount(accountId string) (int, error)
	CommitSync(acct *Account, posts []*Post) error
	UpsertPosts(posts []*Post) error
	RemovePosts(accountId string, postIds []string) error
	FinishDeleteBatch(accountId string, postIds []string, lastDelete time.Time) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

// UpsertAccount merges an account by identity. On conflict only remote
// identity fields are refreshed; local policy settings are never clobbered.
func (repo *Repo) UpsertAccount(acct *Account) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	now := time.Now().UTC()
	isNew = true
	_, err = repo.db.Exec(`INSERT INTO accounts
    	(id, created_at, updated_at, display_name, screen_name, avatar_url, reported_post_count,
    	 policy_keep_favourites, last_fetch, last_delete)
		VALUES(?, ?, ?, ?, ?, ?, ?, 1, ?, ?)`,
		acct.Id, now, now, acct.DisplayName, acct.ScreenName, acct.AvatarUrl,
		acct.ReportedPostCount, time.Time{}, time.Time{})
	if err == nil {
		return
	}
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		// Duplicate key: account with this id already exists
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			isNew = false
			_, err = repo.db.Exec(`UPDATE accounts
				SET updated_at=?, display_name=?, screen_name=?, avatar_url=?, reported_post_count=?
				WHERE id=?`,
				now, acct.DisplayName, acct.ScreenName, acct.AvatarUrl, acct.ReportedPostCount, acct.Id)
			return
		}
	}
	return
}

func (repo *Repo) GetAccount(id string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getAccount(id)
}

const accountFields = `id, created_at, updated_at, display_name, screen_name, avatar_url,
	reported_post_count, policy_enabled, policy_keep_latest, policy_keep_favourites,
	policy_delete_every_sec, policy_keep_younger_sec, last_fetch, last_delete`

func scanAccount(scan func(...any) error) (*Account, error) {
	var res Account
	var deleteEverySec, keepYoungerSec int64
	err := scan(&res.Id, &res.CreatedAt, &res.UpdatedAt, &res.DisplayName, &res.ScreenName,
		&res.AvatarUrl, &res.ReportedPostCount, &res.PolicyEnabled, &res.PolicyKeepLatest,
		&res.PolicyKeepFavs, &deleteEverySec, &keepYoungerSec, &res.LastFetch, &res.LastDelete)
	if err != nil {
		return nil, err
	}
	res.PolicyDeleteEvery = time.Duration(deleteEverySec) * time.Second
	res.PolicyKeepYounger = time.Duration(keepYoungerSec) * time.Second
	return &res, nil
}

func (repo *Repo) getAccount(id string) (*Account, error) {

	row := repo.db.QueryRow(`SELECT `+accountFields+` FROM accounts WHERE id=?`, id)
	res, err := scanAccount(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return res, nil
}

func (repo *Repo) GetAccountsPage(offset, limit int) ([]*Account, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var res []*Account
	var total int
	var err error

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM accounts`)
	if err = row.Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := repo.db.Query(`SELECT `+accountFields+` FROM accounts
		ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

func (repo *Repo) AccountCount() (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM accounts`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) SetPolicy(id string, enabled bool, keepLatest int, keepFavs bool,
	deleteEvery, keepYounger time.Duration) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE accounts
		SET policy_enabled=?, policy_keep_latest=?, policy_keep_favourites=?,
			policy_delete_every_sec=?, policy_keep_younger_sec=?, updated_at=?
		WHERE id=?`,
		enabled, keepLatest, keepFavs,
		int64(deleteEvery/time.Second), int64(keepYounger/time.Second), time.Now().UTC(), id)
	return err
}

func (repo *Repo) SetLastDelete(id string, when time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE accounts SET last_delete=? WHERE id=?`, when, id)
	return err
}

// GetTokens returns an account's credentials newest first; that is the order
// in which they are tried.
func (repo *Repo) GetTokens(accountId string) ([]*OAuthToken, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT token, token_secret, account_id, created_at
		FROM oauth_tokens WHERE account_id=? ORDER BY created_at DESC`, accountId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*OAuthToken, 0)
	for rows.Next() {
		tok := OAuthToken{}
		err = rows.Scan(&tok.Token, &tok.TokenSecret, &tok.AccountId, &tok.CreatedAt)
		if err != nil {
			return nil, err
		}
		res = append(res, &tok)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) AddToken(token *OAuthToken) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO oauth_tokens (token, token_secret, account_id, created_at)
		VALUES(?, ?, ?, ?)`,
		token.Token, token.TokenSecret, token.AccountId, time.Now().UTC())
	if err == nil {
		return nil
	}
	// Duplicate key: same token re-submitted by the login flow
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			return nil
		}
	}
	return err
}

func (repo *Repo) DeleteToken(token string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM oauth_tokens WHERE token=?`, token)
	return err
}

const postFields = `id, author_id, created_at, updated_at, body, favourite, has_media,
	direct, is_reblog, favourite_count, reblog_count`

func scanPost(scan func(...any) error) (*Post, error) {
	var res Post
	err := scan(&res.Id, &res.AuthorId, &res.CreatedAt, &res.UpdatedAt, &res.Body,
		&res.Favourite, &res.HasMedia, &res.Direct, &res.IsReblog,
		&res.FavouriteCount, &res.ReblogCount)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) GetPosts(accountId string) ([]*Post, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+postFields+` FROM posts
		WHERE author_id=? ORDER BY created_at DESC`, accountId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*Post, 0)
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetMostRecentPost(accountId string) (*Post, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+postFields+` FROM posts
		WHERE author_id=? ORDER BY created_at DESC LIMIT 1`, accountId)
	res, err := scanPost(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return res, nil
}

func (repo *Repo) PostCount(accountId string) (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE author_id=?`, accountId)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CommitSync is the commit boundary of one sync call: refreshed identity
// fields, last_fetch, and all merged posts land in a single transaction, or
// not at all. Post upserts overwrite mutable fields only.
func (repo *Repo) CommitSync(acct *Account, posts []*Post) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	_, err = tx.Exec(`UPDATE accounts
		SET updated_at=?, display_name=?, screen_name=?, avatar_url=?, reported_post_count=?, last_fetch=?
		WHERE id=?`,
		now, acct.DisplayName, acct.ScreenName, acct.AvatarUrl, acct.ReportedPostCount, now, acct.Id)
	if err != nil {
		return err
	}

	if err = upsertPostsTx(tx, posts, now); err != nil {
		return err
	}

	return tx.Commit()
}

func (repo *Repo) UpsertPosts(posts []*Post) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err = upsertPostsTx(tx, posts, time.Now().UTC()); err != nil {
		return err
	}
	return tx.Commit()
}

// Merge by identity: mutable fields are overwritten, identity and author
// stay fixed, and no duplicate row can ever appear.
func upsertPostsTx(tx *sql.Tx, posts []*Post, now time.Time) error {
	for _, p := range posts {
		_, err := tx.Exec(`INSERT INTO posts
			(id, author_id, created_at, updated_at, body, favourite, has_media, direct, is_reblog,
			 favourite_count, reblog_count)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				updated_at=excluded.updated_at, body=excluded.body, favourite=excluded.favourite,
				favourite_count=excluded.favourite_count, reblog_count=excluded.reblog_count`,
			p.Id, p.AuthorId, p.CreatedAt, now, p.Body, p.Favourite, p.HasMedia, p.Direct,
			p.IsReblog, p.FavouriteCount, p.ReblogCount)
		if err != nil {
			return err
		}
	}
	return nil
}

func (repo *Repo) RemovePosts(accountId string, postIds []string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err = removePostsTx(tx, accountId, postIds); err != nil {
		return err
	}
	return tx.Commit()
}

// FinishDeleteBatch is the commit boundary of one delete-batch call: local
// drops for every remotely deleted post plus the last_delete throttle update.
func (repo *Repo) FinishDeleteBatch(accountId string, postIds []string, lastDelete time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err = removePostsTx(tx, accountId, postIds); err != nil {
		return err
	}
	if _, err = tx.Exec(`UPDATE accounts SET last_delete=? WHERE id=?`, lastDelete, accountId); err != nil {
		return err
	}
	return tx.Commit()
}

func removePostsTx(tx *sql.Tx, accountId string, postIds []string) error {
	for _, id := range postIds {
		if _, err := tx.Exec(`DELETE FROM posts WHERE id=? AND author_id=?`, id, accountId); err != nil {
			return err
		}
	}
	return nil
}
