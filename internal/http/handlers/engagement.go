package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	types "github.com/evermore-apps/evermore-backend/internal/domain"
	"github.com/evermore-apps/evermore-backend/internal/http/response"
	"github.com/evermore-apps/evermore-backend/internal/services"
)

type EngagementHandler struct {
	engagementService services.EngagementService
}

func NewEngagementHandler(engagementService services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

func (eh *EngagementHandler) CreateQuiz(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		Title     string         `json:"title"`
		Questions datatypes.JSON `json:"questions"`
		Active    bool           `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	quiz := types.Quiz{
		CoupleID:  coupleID,
		Title:     req.Title,
		Questions: req.Questions,
		Active:    req.Active,
	}
	if err := eh.engagementService.CreateQuiz(c.Request.Context(), &quiz); err != nil {
		response.RespondError(c, http.StatusBadRequest, "quiz_creation_failed", err)
		return
	}
	response.RespondCreated(c, quiz)
}

func (eh *EngagementHandler) ListQuizzes(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	quizzes, err := eh.engagementService.ListQuizzes(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "quiz_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"quizzes": quizzes})
}

func (eh *EngagementHandler) UpdateQuiz(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	quizID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Title     *string         `json:"title"`
		Questions *datatypes.JSON `json:"questions"`
		Active    *bool           `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Questions != nil {
		fields["questions"] = *req.Questions
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if err := eh.engagementService.UpdateQuiz(c.Request.Context(), coupleID, quizID, fields); err != nil {
		response.RespondError(c, http.StatusBadRequest, "quiz_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (eh *EngagementHandler) DeleteQuiz(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	quizID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := eh.engagementService.DeleteQuiz(c.Request.Context(), coupleID, quizID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "quiz_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (eh *EngagementHandler) SubmitQuizResult(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	quizID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		GuestID  uuid.UUID      `json:"guest_id"`
		Score    int            `json:"score"`
		MaxScore int            `json:"max_score"`
		Answers  datatypes.JSON `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	result := types.QuizResult{
		QuizID:   quizID,
		GuestID:  req.GuestID,
		Score:    req.Score,
		MaxScore: req.MaxScore,
		Answers:  req.Answers,
	}
	if err := eh.engagementService.SubmitQuizResult(c.Request.Context(), coupleID, &result); err != nil {
		response.RespondError(c, http.StatusBadRequest, "quiz_submission_failed", err)
		return
	}
	response.RespondCreated(c, result)
}

func (eh *EngagementHandler) QuizLeaderboard(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	quizID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	entries, err := eh.engagementService.QuizLeaderboard(c.Request.Context(), coupleID, quizID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "quiz_leaderboard_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"leaderboard": entries})
}

func (eh *EngagementHandler) CreatePoll(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	var req struct {
		Question string         `json:"question"`
		Options  datatypes.JSON `json:"options"`
		Active   bool           `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	poll := types.Poll{
		CoupleID: coupleID,
		Question: req.Question,
		Options:  req.Options,
		Active:   req.Active,
	}
	if err := eh.engagementService.CreatePoll(c.Request.Context(), &poll); err != nil {
		response.RespondError(c, http.StatusBadRequest, "poll_creation_failed", err)
		return
	}
	response.RespondCreated(c, poll)
}

func (eh *EngagementHandler) ListPolls(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	polls, err := eh.engagementService.ListPolls(c.Request.Context(), coupleID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "poll_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"polls": polls})
}

func (eh *EngagementHandler) ClosePoll(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	pollID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := eh.engagementService.ClosePoll(c.Request.Context(), coupleID, pollID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "poll_close_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (eh *EngagementHandler) DeletePoll(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	pollID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := eh.engagementService.DeletePoll(c.Request.Context(), coupleID, pollID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "poll_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (eh *EngagementHandler) Vote(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	pollID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		GuestID     uuid.UUID `json:"guest_id"`
		OptionIndex int       `json:"option_index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := eh.engagementService.Vote(c.Request.Context(), coupleID, pollID, req.GuestID, req.OptionIndex); err != nil {
		response.RespondError(c, http.StatusBadRequest, "vote_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (eh *EngagementHandler) PollResults(c *gin.Context) {
	coupleID, ok := tenantID(c)
	if !ok {
		return
	}
	pollID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	results, err := eh.engagementService.PollResults(c.Request.Context(), coupleID, pollID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "poll_results_failed", err)
		return
	}
	response.RespondOK(c, results)
}
