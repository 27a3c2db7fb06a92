package server

import (
	"encoding/json"
	"forget/dal"
	"forget/dto"
	"forget/logic"
	"forget/shared"
	"github.com/gorilla/mux"
	"net/http"
	"strconv"
	"time"
)

const defaultPageSize = 50

// apiHandlerGroup is the invocation surface for the external scheduler and
// the login flow. It owns no cadence, locking or retry policy; it only
// exposes the engine's operations.
type apiHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	syncer  logic.ISyncer
	deleter logic.IDeleter
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	syncer logic.ISyncer,
	deleter logic.IDeleter,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		syncer:  syncer,
		deleter: deleter,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.getAccounts(w, r) }},
		{"GET", "/accounts/{id}", func(w http.ResponseWriter, r *http.Request) { hg.getAccount(w, r) }},
		{"PUT", "/accounts/{id}/policy", func(w http.ResponseWriter, r *http.Request) { hg.putPolicy(w, r) }},
		{"POST", "/accounts/{id}/sync", func(w http.ResponseWriter, r *http.Request) { hg.postSync(w, r) }},
		{"POST", "/accounts/{id}/delete", func(w http.ResponseWriter, r *http.Request) { hg.postDelete(w, r) }},
		{"POST", "/tokens", func(w http.ResponseWriter, r *http.Request) { hg.postTokens(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) apiAccount(acct *dal.Account) *dto.ApiAccount {
	postCount, err := hg.repo.PostCount(acct.Id)
	if err != nil {
		hg.logger.Warnf("Failed to count posts of %s: %v", acct.Id, err)
	}
	return &dto.ApiAccount{
		Id:          acct.Id,
		DisplayName: acct.DisplayName,
		ScreenName:  acct.ScreenName,
		AvatarUrl:   acct.AvatarUrl,
		PostCount:   postCount,
		Policy: dto.ApiPolicy{
			Enabled:        acct.PolicyEnabled,
			KeepLatest:     acct.PolicyKeepLatest,
			KeepFavourites: acct.PolicyKeepFavs,
			DeleteEverySec: int64(acct.PolicyDeleteEvery / time.Second),
			KeepYoungerSec: int64(acct.PolicyKeepYounger / time.Second),
		},
		LastFetch:  acct.LastFetch,
		LastDelete: acct.LastDelete,
	}
}

func (hg *apiHandlerGroup) getAccounts(w http.ResponseWriter, r *http.Request) {

	offset := 0
	limit := defaultPageSize
	if str := r.URL.Query().Get("offset"); str != "" {
		offset, _ = strconv.Atoi(str)
	}
	if str := r.URL.Query().Get("limit"); str != "" {
		limit, _ = strconv.Atoi(str)
	}

	accounts, total, err := hg.repo.GetAccountsPage(offset, limit)
	if err != nil {
		hg.logger.Errorf("Failed to list accounts: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := dto.ApiAccountList{Total: total}
	for _, acct := range accounts {
		resp.Accounts = append(resp.Accounts, hg.apiAccount(acct))
	}
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *apiHandlerGroup) getAccount(w http.ResponseWriter, r *http.Request) {

	id := mux.Vars(r)["id"]
	acct, err := hg.repo.GetAccount(id)
	if err != nil {
		hg.logger.Errorf("Failed to load account %s: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if acct == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, hg.apiAccount(acct))
}

func (hg *apiHandlerGroup) putPolicy(w http.ResponseWriter, r *http.Request) {

	id := mux.Vars(r)["id"]
	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var policy dto.ApiPolicy
	if err := json.Unmarshal(body, &policy); err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	acct, err := hg.repo.GetAccount(id)
	if err != nil {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if acct == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}

	// Sub-minute intervals are clamped already at the door
	deleteEvery := logic.ClampInterval(time.Duration(policy.DeleteEverySec) * time.Second)
	keepYounger := logic.ClampInterval(time.Duration(policy.KeepYoungerSec) * time.Second)
	err = hg.repo.SetPolicy(id, policy.Enabled, policy.KeepLatest, policy.KeepFavourites,
		deleteEvery, keepYounger)
	if err != nil {
		hg.logger.Errorf("Failed to store policy for %s: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	acct, err = hg.repo.GetAccount(id)
	if err != nil || acct == nil {
		hg.logger.Errorf("Failed to re-load account %s after policy update: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, hg.apiAccount(acct))
}

func (hg *apiHandlerGroup) postSync(w http.ResponseWriter, r *http.Request) {

	id := mux.Vars(r)["id"]
	hg.logger.Infof("POST /api/accounts/%s/sync: Request received", id)

	outcome := hg.syncer.Sync(id)
	resp := dto.ApiSyncResult{
		Status:    outcome.Status.String(),
		Merged:    outcome.Merged,
		Retryable: outcome.Retryable,
	}
	if outcome.Err != nil {
		resp.Error = outcome.Err.Error()
	}
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *apiHandlerGroup) postDelete(w http.ResponseWriter, r *http.Request) {

	id := mux.Vars(r)["id"]
	hg.logger.Infof("POST /api/accounts/%s/delete: Request received", id)

	outcome := hg.deleter.EvaluateAndDelete(id)
	resp := dto.ApiDeleteResult{
		Deleted:   outcome.Deleted,
		Retryable: outcome.Retryable,
	}
	if outcome.StoppedAt != nil {
		resp.StoppedAt = outcome.StoppedAt.Id
	}
	if outcome.Err != nil {
		resp.Error = outcome.Err.Error()
	}
	writeJsonResponse(hg.logger, w, &resp)
}

// postTokens receives a fresh credential from the external login flow. The
// account row is created on first contact; identity fields fill in on the
// next sync.
func (hg *apiHandlerGroup) postTokens(w http.ResponseWriter, r *http.Request) {

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.ApiToken
	if err := json.Unmarshal(body, &req); err != nil || req.AccountId == "" || req.Token == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if shared.ServiceOf(req.AccountId) == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	isNew, err := hg.repo.UpsertAccount(&dal.Account{Id: req.AccountId})
	if err != nil {
		hg.logger.Errorf("Failed to create account %s: %v", req.AccountId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	err = hg.repo.AddToken(&dal.OAuthToken{
		Token:       req.Token,
		TokenSecret: req.TokenSecret,
		AccountId:   req.AccountId,
	})
	if err != nil {
		hg.logger.Errorf("Failed to store token for %s: %v", req.AccountId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	hg.logger.Infof("Stored token for %s; account newly created: %v", req.AccountId, isNew)
	w.WriteHeader(http.StatusNoContent)
}
