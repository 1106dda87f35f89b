package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
	handler "github.com/mikiasgoitom/Piiquante/internal/handler/http"
	dto "github.com/mikiasgoitom/Piiquante/internal/handler/http/dto"
	"github.com/mikiasgoitom/Piiquante/internal/handler/http/middleware"
	mocks "github.com/mikiasgoitom/Piiquante/internal/handler/http/mocks"
	"github.com/mikiasgoitom/Piiquante/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const callerID = "u1"

func setupSauceRouter(sauces *mocks.MockSauceUsecase, ledger *mocks.MockVoteLedger) *gin.Engine {
	h := handler.NewSauceHandler(sauces, ledger)
	r := gin.New()
	g := r.Group("/api/sauces", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, callerID)
		c.Next()
	})
	g.GET("", h.ListSauces)
	g.GET("/:id", h.GetSauce)
	g.POST("", h.CreateSauce)
	g.PUT("/:id", h.UpdateSauce)
	g.DELETE("/:id", h.DeleteSauce)
	g.POST("/:id/like", h.LikeSauce)
	g.GET("/:id/vote", h.GetVote)
	return r
}

func doRequest(r http.Handler, method, path string, body []byte, contentType string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	r.ServeHTTP(w, req)
	return w
}

func likeBody(like int) []byte {
	body, _ := json.Marshal(map[string]interface{}{"userId": callerID, "like": like})
	return body
}

func sauceBody() []byte {
	body, _ := json.Marshal(dto.SauceRequest{
		Name:         "Scorpion Fire",
		Manufacturer: "Pepper Co",
		Description:  "Very hot",
		MainPepper:   "Trinidad Scorpion",
		Heat:         9,
	})
	return body
}

func TestLikeSauce_Messages(t *testing.T) {
	tests := []struct {
		like    int
		message string
		want    string
	}{
		{like: 1, message: entity.VoteMessageLiked, want: "Sauce liked"},
		{like: -1, message: entity.VoteMessageDisliked, want: "Sauce disliked"},
		{like: 0, message: entity.VoteMessageUnliked, want: "Sauce unliked"},
		{like: 0, message: entity.VoteMessageUndisliked, want: "Sauce undisliked"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ledger := &mocks.MockVoteLedger{}
			direction := entity.VoteDirection(tt.like)
			ledger.On("ApplyVote", mock.Anything, "s1", callerID, direction).
				Return(&entity.VoteOutcome{Direction: direction, Message: tt.message, Sauce: &entity.Sauce{ID: "s1"}}, nil)
			r := setupSauceRouter(&mocks.MockSauceUsecase{}, ledger)

			w := doRequest(r, "POST", "/api/sauces/s1/like", likeBody(tt.like), "application/json")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"message":"`+tt.want+`"}`, w.Body.String())
			ledger.AssertExpectations(t)
		})
	}
}

func TestLikeSauce_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "already liked", err: &usecase.VoteRejectedError{Reason: usecase.ReasonAlreadyLiked}, wantCode: http.StatusBadRequest, wantBody: "already liked"},
		{name: "opposite vote", err: &usecase.VoteRejectedError{Reason: usecase.ReasonOppositeVote}, wantCode: http.StatusBadRequest, wantBody: "opposite vote exists"},
		{name: "not found", err: usecase.ErrSauceNotFound, wantCode: http.StatusNotFound, wantBody: "Sauce not found"},
		{name: "storage", err: &usecase.StorageError{Op: "save votes", Err: errors.New("mongo down")}, wantCode: http.StatusInternalServerError, wantBody: "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &mocks.MockVoteLedger{}
			ledger.On("ApplyVote", mock.Anything, "s1", callerID, entity.VoteLike).Return(nil, tt.err)
			r := setupSauceRouter(&mocks.MockSauceUsecase{}, ledger)

			w := doRequest(r, "POST", "/api/sauces/s1/like", likeBody(1), "application/json")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "mongo down")
		})
	}
}

func TestLikeSauce_BadRequests(t *testing.T) {
	ledger := &mocks.MockVoteLedger{}
	r := setupSauceRouter(&mocks.MockSauceUsecase{}, ledger)

	w := doRequest(r, "POST", "/api/sauces/s1/like", []byte(`{"userId":"u1"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, "POST", "/api/sauces/s1/like", []byte(`{"userId":"someone-else","like":1}`), "application/json")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid user ID")

	ledger.AssertNotCalled(t, "ApplyVote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLikeSauce_UnknownDirectionReachesLedger(t *testing.T) {
	ledger := &mocks.MockVoteLedger{}
	ledger.On("ApplyVote", mock.Anything, "s1", callerID, entity.VoteDirection(5)).
		Return(nil, &usecase.VoteRejectedError{Reason: usecase.ReasonInvalidDirection})
	r := setupSauceRouter(&mocks.MockSauceUsecase{}, ledger)

	w := doRequest(r, "POST", "/api/sauces/s1/like", likeBody(5), "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid direction")
}

func TestGetVote(t *testing.T) {
	ledger := &mocks.MockVoteLedger{}
	ledger.On("GetVoteState", mock.Anything, "s1", callerID).Return(entity.VoteStateDisliked, nil)
	r := setupSauceRouter(&mocks.MockSauceUsecase{}, ledger)

	w := doRequest(r, "GET", "/api/sauces/s1/vote", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sauceId":"s1","vote":"dislike"}`, w.Body.String())
}

func TestListSauces_EmptyIsArray(t *testing.T) {
	sauces := &mocks.MockSauceUsecase{}
	sauces.On("ListSauces", mock.Anything).Return(nil, nil)
	r := setupSauceRouter(sauces, &mocks.MockVoteLedger{})

	w := doRequest(r, "GET", "/api/sauces", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetSauce(t *testing.T) {
	sauces := &mocks.MockSauceUsecase{}
	sauce := &entity.Sauce{ID: "s1", Name: "Ghost", UsersLiked: entity.NewVoterSet("a", "b")}
	sauce.SyncCounters()
	sauces.On("GetSauce", mock.Anything, "s1").Return(sauce, nil)
	sauces.On("GetSauce", mock.Anything, "missing").Return(nil, usecase.ErrSauceNotFound)
	r := setupSauceRouter(sauces, &mocks.MockVoteLedger{})

	w := doRequest(r, "GET", "/api/sauces/s1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "s1", got["_id"])
	assert.Equal(t, float64(2), got["likes"])
	assert.Equal(t, []interface{}{"a", "b"}, got["usersLiked"])
	assert.Equal(t, []interface{}{}, got["usersDisliked"])

	w = doRequest(r, "GET", "/api/sauces/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSauce_JSON(t *testing.T) {
	sauces := &mocks.MockSauceUsecase{}
	sauces.On("CreateSauce", mock.Anything, callerID, mock.MatchedBy(func(d entity.SauceDetails) bool {
		return d.Name == "Scorpion Fire" && d.Heat == 9
	})).Return(&entity.Sauce{ID: "new", UserID: callerID}, nil)
	r := setupSauceRouter(sauces, &mocks.MockVoteLedger{})

	w := doRequest(r, "POST", "/api/sauces", sauceBody(), "application/json")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Sauce created")
	sauces.AssertExpectations(t)
}

func TestCreateSauce_Multipart(t *testing.T) {
	sauces := &mocks.MockSauceUsecase{}
	sauces.On("CreateSauce", mock.Anything, callerID, mock.Anything).Return(&entity.Sauce{ID: "new"}, nil)
	r := setupSauceRouter(sauces, &mocks.MockVoteLedger{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("sauce", string(sauceBody())))
	part, err := mw.CreateFormFile("image", "sauce.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("png"))
	require.NoError(t, mw.Close())

	w := doRequest(r, "POST", "/api/sauces", buf.Bytes(), mw.FormDataContentType())
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateSauce_Invalid(t *testing.T) {
	sauces := &mocks.MockSauceUsecase{}
	r := setupSauceRouter(sauces, &mocks.MockVoteLedger{})

	w := doRequest(r, "POST", "/api/sauces", []byte(`{"name":"only a name","heat":20}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("sauce", "{broken"))
	require.NoError(t, mw.Close())
	w = doRequest(r, "POST", "/api/sauces", buf.Bytes(), mw.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	sauces.AssertNotCalled(t, "CreateSauce", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAndDeleteSauce_Forbidden(t *testing.T) {
	sauces := &mocks.MockSauceUsecase{}
	sauces.On("UpdateSauce", mock.Anything, "s1", callerID, mock.Anything).Return(nil, usecase.ErrForbidden)
	sauces.On("DeleteSauce", mock.Anything, "s1", callerID).Return(usecase.ErrForbidden)
	r := setupSauceRouter(sauces, &mocks.MockVoteLedger{})

	w := doRequest(r, "PUT", "/api/sauces/s1", sauceBody(), "application/json")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, "DELETE", "/api/sauces/s1", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteSauce(t *testing.T) {
	sauces := &mocks.MockSauceUsecase{}
	sauces.On("DeleteSauce", mock.Anything, "s1", callerID).Return(nil)
	r := setupSauceRouter(sauces, &mocks.MockVoteLedger{})

	w := doRequest(r, "DELETE", "/api/sauces/s1", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Sauce deleted"}`, w.Body.String())
}
