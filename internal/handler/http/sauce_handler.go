package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
	"github.com/mikiasgoitom/Piiquante/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

// Messages returned for committed votes, keyed by outcome message.
var voteMessages = map[string]string{
	entity.VoteMessageLiked:      "Sauce liked",
	entity.VoteMessageDisliked:   "Sauce disliked",
	entity.VoteMessageUnliked:    "Sauce unliked",
	entity.VoteMessageUndisliked: "Sauce undisliked",
}

type SauceHandler struct {
	sauceUsecase usecasecontract.ISauceUseCase
	voteLedger   usecasecontract.IVoteLedger
}

func NewSauceHandler(sauceUsecase usecasecontract.ISauceUseCase, voteLedger usecasecontract.IVoteLedger) *SauceHandler {
	return &SauceHandler{
		sauceUsecase: sauceUsecase,
		voteLedger:   voteLedger,
	}
}

// ListSauces returns every sauce.
func (h *SauceHandler) ListSauces(c *gin.Context) {
	sauces, err := h.sauceUsecase.ListSauces(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	if sauces == nil {
		sauces = []*entity.Sauce{}
	}
	SuccessHandler(c, http.StatusOK, sauces)
}

func (h *SauceHandler) GetSauce(c *gin.Context) {
	sauce, err := h.sauceUsecase.GetSauce(c.Request.Context(), c.Param("id"))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, sauce)
}

func (h *SauceHandler) CreateSauce(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	req, ok := bindSauceRequest(c)
	if !ok || !checkBodyUserID(c, req.UserID, userID) {
		return
	}

	sauce, err := h.sauceUsecase.CreateSauce(c.Request.Context(), userID, req.ToDetails())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.SauceCreatedResponse{Message: "Sauce created", Sauce: sauce})
}

func (h *SauceHandler) UpdateSauce(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	req, ok := bindSauceRequest(c)
	if !ok || !checkBodyUserID(c, req.UserID, userID) {
		return
	}

	sauce, err := h.sauceUsecase.UpdateSauce(c.Request.Context(), c.Param("id"), userID, req.ToDetails())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, sauce)
}

func (h *SauceHandler) DeleteSauce(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.sauceUsecase.DeleteSauce(c.Request.Context(), c.Param("id"), userID); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Sauce deleted")
}

// LikeSauce sets the caller's vote: like 1 likes, -1 dislikes, 0 cancels.
func (h *SauceHandler) LikeSauce(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.LikeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if !checkBodyUserID(c, req.UserID, userID) {
		return
	}

	outcome, err := h.voteLedger.ApplyVote(c.Request.Context(), c.Param("id"), userID, entity.VoteDirection(*req.Like))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, voteMessages[outcome.Message])
}

// GetVote reports the caller's current vote on a sauce.
func (h *SauceHandler) GetVote(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	sauceID := c.Param("id")
	state, err := h.voteLedger.GetVoteState(c.Request.Context(), sauceID, userID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.VoteStateResponse{SauceID: sauceID, Vote: state})
}

// bindSauceRequest accepts either a JSON body or a multipart form whose
// "sauce" field holds the JSON document. Uploaded files are not stored.
func bindSauceRequest(c *gin.Context) (dto.SauceRequest, bool) {
	var req dto.SauceRequest
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := BindAndValidate(c, &req); err != nil {
			return req, false
		}
		return req, true
	}

	raw := c.PostForm("sauce")
	if raw == "" {
		ErrorHandler(c, http.StatusBadRequest, "missing sauce field")
		return req, false
	}
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "sauce field is not valid JSON")
		return req, false
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}
