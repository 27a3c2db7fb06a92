package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"forget/dal"
	"forget/dto"
	"forget/logic"
	"forget/server"
	"forget/shared"
	"forget/test/mocks"
)

const testApiKey = "test-api-key"

type apiHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockRepo    *mocks.MockIRepo
	mockSyncer  *mocks.MockISyncer
	mockDeleter *mocks.MockIDeleter
}

func setupApiTest(t *testing.T) (*gomock.Controller, *apiHarness, *httptest.Server) {

	ctrl := gomock.NewController(t)

	h := &apiHarness{
		cfg:         &shared.Config{},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockRepo:    mocks.NewMockIRepo(ctrl),
		mockSyncer:  mocks.NewMockISyncer(ctrl),
		mockDeleter: mocks.NewMockIDeleter(ctrl),
	}
	h.cfg.Secrets.ApiKeys = []string{testApiKey}
	setupDummyLogger(h.mockLogger)

	group := server.NewApiHandlerGroup(h.cfg, h.mockLogger, h.mockRepo, h.mockSyncer, h.mockDeleter)
	router := server.NewMux([]server.IHandlerGroup{group})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return ctrl, h, srv
}

func doApiRequest(t *testing.T, srv *httptest.Server, method, path, apiKey, body string) *http.Response {
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if apiKey != "" {
		req.Header.Set("X-API-KEY", apiKey)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestApiRejectsMissingKey(t *testing.T) {

	ctrl, _, srv := setupApiTest(t)
	defer ctrl.Finish()

	resp := doApiRequest(t, srv, "GET", "/api/accounts", "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestApiGetAccountNotFound(t *testing.T) {

	ctrl, h, srv := setupApiTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetAccount("twitter:123").Return(nil, nil)

	resp := doApiRequest(t, srv, "GET", "/api/accounts/twitter:123", testApiKey, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApiPutPolicyClampsIntervals(t *testing.T) {

	ctrl, h, srv := setupApiTest(t)
	defer ctrl.Finish()

	acctId := "twitter:123"
	acct := &dal.Account{Id: acctId}
	h.mockRepo.EXPECT().GetAccount(acctId).Return(acct, nil).Times(2)
	h.mockRepo.EXPECT().PostCount(acctId).Return(0, nil)

	// 59s comes in below the floor and is raised; zero stays zero
	h.mockRepo.EXPECT().SetPolicy(acctId, true, 5, true, time.Minute, time.Duration(0)).
		Return(nil)

	body := `{"enabled":true,"keep_latest":5,"keep_favourites":true,` +
		`"delete_every_sec":59,"keep_younger_sec":0}`
	resp := doApiRequest(t, srv, "PUT", "/api/accounts/"+acctId+"/policy", testApiKey, body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApiPutPolicyReloadFailureIs500(t *testing.T) {

	ctrl, h, srv := setupApiTest(t)
	defer ctrl.Finish()

	acctId := "twitter:123"
	acct := &dal.Account{Id: acctId}
	// The account vanishes between storing the policy and re-reading it;
	// the handler must answer 500, not panic on a nil row
	h.mockRepo.EXPECT().GetAccount(acctId).Return(acct, nil)
	h.mockRepo.EXPECT().SetPolicy(acctId, true, 5, false, time.Minute, time.Duration(0)).
		Return(nil)
	h.mockRepo.EXPECT().GetAccount(acctId).Return(nil, nil)

	body := `{"enabled":true,"keep_latest":5,"delete_every_sec":60}`
	resp := doApiRequest(t, srv, "PUT", "/api/accounts/"+acctId+"/policy", testApiKey, body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestApiPostSync(t *testing.T) {

	ctrl, h, srv := setupApiTest(t)
	defer ctrl.Finish()

	h.mockSyncer.EXPECT().Sync("twitter:123").Return(logic.SyncOutcome{
		Status: logic.SyncProgressed,
		Merged: 17,
	})

	resp := doApiRequest(t, srv, "POST", "/api/accounts/twitter:123/sync", testApiKey, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result dto.ApiSyncResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "progressed", result.Status)
	assert.Equal(t, 17, result.Merged)
	assert.Empty(t, result.Error)
}

func TestApiPostDelete(t *testing.T) {

	ctrl, h, srv := setupApiTest(t)
	defer ctrl.Finish()

	h.mockDeleter.EXPECT().EvaluateAndDelete("twitter:123").Return(logic.DeleteOutcome{
		Deleted:   2,
		StoppedAt: &dal.Post{Id: "twitter:3"},
		Retryable: false,
		Err:       &logic.BackendError{Kind: logic.ErrPermanent, Service: "twitter", Status: 403},
	})

	resp := doApiRequest(t, srv, "POST", "/api/accounts/twitter:123/delete", testApiKey, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result dto.ApiDeleteResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 2, result.Deleted)
	assert.Equal(t, "twitter:3", result.StoppedAt)
	assert.NotEmpty(t, result.Error)
}

func TestApiPostTokens(t *testing.T) {

	ctrl, h, srv := setupApiTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().UpsertAccount(gomock.Any()).
		DoAndReturn(func(acct *dal.Account) (bool, error) {
			assert.Equal(t, "mastodon:example.social:42", acct.Id)
			return true, nil
		})
	h.mockRepo.EXPECT().AddToken(gomock.Any()).
		DoAndReturn(func(token *dal.OAuthToken) error {
			assert.Equal(t, "bearer-token", token.Token)
			assert.Equal(t, "mastodon:example.social:42", token.AccountId)
			return nil
		})

	body := `{"account_id":"mastodon:example.social:42","token":"bearer-token"}`
	resp := doApiRequest(t, srv, "POST", "/api/tokens", testApiKey, body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestApiPostTokensRejectsUntaggedAccount(t *testing.T) {

	ctrl, _, srv := setupApiTest(t)
	defer ctrl.Finish()

	body := `{"account_id":"no-service-tag","token":"tok"}`
	resp := doApiRequest(t, srv, "POST", "/api/tokens", testApiKey, body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
