// Idea HTTP handlers.
//
// This file exposes REST endpoints for idea resources:
//   - GET    /ideas                 (home feed, filtered and sorted)
//   - POST   /ideas                 (submit)
//   - GET    /ideas/search          (fuzzy search over the cached feed)
//   - GET    /ideas/mine            (current user's submissions)
//   - GET    /ideas/pending-review  (direction ranking)
//   - GET    /ideas/{id}            (detail with comment thread)
//   - GET    /categories
//   - GET    /review-cycle
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses. List views render
// from the session cache populated at bootstrap; the detail view reads
// fresh from the backend.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ideabox/go-ideabox-backend/internal/domain"
	"github.com/ideabox/go-ideabox-backend/internal/http/middleware"
	"github.com/ideabox/go-ideabox-backend/internal/search"
	"github.com/ideabox/go-ideabox-backend/internal/services"
	"github.com/ideabox/go-ideabox-backend/internal/store"
	"github.com/ideabox/go-ideabox-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// IdeaService defines idea operations consumed by HTTP handlers.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts.
type IdeaService interface {
	// Submit inserts a new idea for the signed-in user.
	Submit(ctx context.Context, st *store.Store, user *domain.Profile, in services.SubmitInput) (*domain.Idea, error)
	// Detail fetches one idea and its comment thread fresh from the backend.
	Detail(ctx context.Context, id string) (*domain.Idea, []domain.Comment, error)
	// List renders the home feed from the session cache.
	List(st *store.Store, f services.IdeaFilters) []domain.Idea
	// PendingReview returns the top ideas awaiting a direction decision.
	PendingReview(st *store.Store, limit int) []domain.Idea
	// ByStatus returns cached ideas with the given status.
	ByStatus(st *store.Store, status domain.IdeaStatus) []domain.Idea
	// Mine returns cached ideas authored by userID.
	Mine(st *store.Store, userID string) []domain.Idea
}

// VoteService defines vote casting consumed by HTTP handlers.
type VoteService interface {
	// Cast records a rating on one axis of an idea.
	Cast(ctx context.Context, st *store.Store, user *domain.Profile, ideaID string, axis services.VoteAxis, rating int) (*domain.Vote, *domain.IdeaAggregates, error)
}

// CommentService defines comment posting consumed by HTTP handlers.
type CommentService interface {
	// Post inserts a comment by the signed-in user.
	Post(ctx context.Context, st *store.Store, user *domain.Profile, ideaID, content string, isAnonymous bool) (*domain.Comment, error)
}

// DecisionService defines the direction decision flow.
type DecisionService interface {
	// Decide records an approve/reject verdict and notifies the author.
	Decide(ctx context.Context, st *store.Store, user *domain.Profile, in services.DecisionInput) error
}

// NotificationService defines notification read-state mutations.
type NotificationService interface {
	MarkRead(ctx context.Context, st *store.Store, user *domain.Profile, id string) error
	MarkAllRead(ctx context.Context, st *store.Store, user *domain.Profile) error
}

// ProfileService defines profile edits.
type ProfileService interface {
	Update(ctx context.Context, st *store.Store, user *domain.Profile, in services.ProfileUpdateInput) (*domain.Profile, error)
}

//
// Handler wiring
//

// Handlers groups the authenticated API endpoints. It depends on abstract
// service interfaces to keep transport concerns out of business logic.
type Handlers struct {
	ideaSvc     IdeaService
	voteSvc     VoteService
	commentSvc  CommentService
	decisionSvc DecisionService
	notifSvc    NotificationService
	profileSvc  ProfileService

	// pendingLimit caps the direction panel's ranking size.
	pendingLimit int
}

// New constructs a Handlers instance bound to the given services.
func New(ideaSvc IdeaService, voteSvc VoteService, commentSvc CommentService, decisionSvc DecisionService, notifSvc NotificationService, profileSvc ProfileService, pendingLimit int) *Handlers {
	if pendingLimit < 1 {
		pendingLimit = 10
	}
	return &Handlers{
		ideaSvc:      ideaSvc,
		voteSvc:      voteSvc,
		commentSvc:   commentSvc,
		decisionSvc:  decisionSvc,
		notifSvc:     notifSvc,
		profileSvc:   profileSvc,
		pendingLimit: pendingLimit,
	}
}

// sessionStore extracts the per-session cache placed in the Gin context by
// the auth middleware. A nil result means the route was wired without
// Auth(), which is a programming error surfaced as 401 by the caller.
func sessionStore(c *gin.Context) *store.Store {
	if v, ok := c.Get(middleware.CtxStoreKey); ok {
		if st, ok := v.(*store.Store); ok {
			return st
		}
	}
	return nil
}

// currentUser extracts the signed-in profile placed in the Gin context by
// the auth middleware.
func currentUser(c *gin.Context) *domain.Profile {
	if v, ok := c.Get(middleware.CtxUserKey); ok {
		if u, ok := v.(*domain.Profile); ok {
			return u
		}
	}
	return nil
}

// sessionOrFail returns the session cache and profile, or writes a 401 and
// returns ok=false.
func sessionOrFail(c *gin.Context) (*store.Store, *domain.Profile, bool) {
	st := sessionStore(c)
	user := currentUser(c)
	if st == nil || user == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return nil, nil, false
	}
	return st, user, true
}

//
// DTOs
//

// SubmitIdeaRequest is the JSON payload for submitting an idea.
type SubmitIdeaRequest struct {
	// Title of the idea (1-255 chars after whitespace collapsing).
	Title string `json:"title" binding:"required" example:"Standing desks for the support floor"`
	// Description explains the idea; required.
	Description string `json:"description" binding:"required" example:"Half the team asked for them during the retro."`
	// CategoryID optionally files the idea under a category.
	CategoryID *string `json:"category_id,omitempty" format:"uuid"`
	// IsAnonymous hides the author's name in shared views.
	IsAnonymous bool `json:"is_anonymous"`
}

// IdeaDetailResponse wraps an idea and its comment thread.
type IdeaDetailResponse struct {
	Idea     domain.Idea      `json:"idea"`
	Comments []domain.Comment `json:"comments"`
}

// ListIdeasResponse wraps the home feed.
type ListIdeasResponse struct {
	Ideas []domain.Idea `json:"ideas"`
	Total int           `json:"total"`
}

// SearchResultsResponse wraps a ranked search hit list.
type SearchResultsResponse struct {
	Ideas []domain.Idea `json:"ideas"`
	Query string        `json:"query"`
}

// ReviewCycleResponse describes the active review cycle.
type ReviewCycleResponse struct {
	Cycle           *domain.ReviewCycle `json:"cycle"`
	DaysUntilReview int                 `json:"days_until_review"`
}

//
// Handlers
//

// ListIdeas godoc
// @ID          listIdeas
// @Summary     List ideas (home feed)
// @Description Returns the cached idea feed, optionally filtered by status and category and sorted by priority, quality, or recency.
// @Tags        Ideas
// @Produce     json
// @Security    BearerAuth
//
// @Param       status    query  string  false  "Filter by status"    Enums(submitted, under_review, approved, rejected, in_progress, implemented, scheduled)
// @Param       category  query  string  false  "Filter by category ID"  format(uuid)
// @Param       sort      query  string  false  "Sort order"          Enums(priority, quality, recent)  default(recent)
//
// @Success     200  {object}  handlers.ListIdeasResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /ideas [get]
func (h *Handlers) ListIdeas(c *gin.Context) {
	st, _, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	f := services.IdeaFilters{
		Status:   domain.IdeaStatus(strings.TrimSpace(c.Query("status"))),
		Category: strings.TrimSpace(c.Query("category")),
		SortBy:   services.SortOrder(strings.TrimSpace(c.Query("sort"))),
	}
	ideas := h.ideaSvc.List(st, f)
	ok(c, http.StatusOK, ListIdeasResponse{Ideas: ideas, Total: len(ideas)})
}

// SubmitIdea godoc
// @ID          submitIdea
// @Summary     Submit a new idea
// @Description Inserts an idea for the current user. The stored status is always "submitted" regardless of payload.
// @Tags        Ideas
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.SubmitIdeaRequest  true  "Idea payload"
//
// @Success     201  {object}  domain.Idea
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ideas [post]
func (h *Handlers) SubmitIdea(c *gin.Context) {
	st, user, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}

	var req SubmitIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	idea, err := h.ideaSvc.Submit(c.Request.Context(), st, user, services.SubmitInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		switch err {
		case services.ErrEmptyTitle, services.ErrEmptyDescription:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSubmitFailed, "could not submit idea")
		}
		return
	}
	ok(c, http.StatusCreated, idea)
}

// GetIdea godoc
// @ID          getIdea
// @Summary     Idea detail
// @Description Returns one idea with its comment thread, fetched fresh from the backend.
// @Tags        Ideas
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Idea ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.IdeaDetailResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Idea not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /ideas/{id} [get]
func (h *Handlers) GetIdea(c *gin.Context) {
	if _, _, okAuth := sessionOrFail(c); !okAuth {
		return
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "idea id must be a UUID")
		return
	}

	idea, comments, err := h.ideaSvc.Detail(c.Request.Context(), id)
	if err != nil {
		if err == services.ErrIdeaNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "idea not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load idea")
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	ok(c, http.StatusOK, IdeaDetailResponse{Idea: *idea, Comments: comments})
}

// SearchIdeas godoc
// @ID          searchIdeas
// @Summary     Search ideas
// @Description Fuzzy, accent-insensitive search over the cached feed's titles and descriptions.
// @Tags        Ideas
// @Produce     json
// @Security    BearerAuth
//
// @Param       q      query  string  true   "Search query"
// @Param       limit  query  int     false  "Maximum results"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.SearchResultsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /ideas/search [get]
func (h *Handlers) SearchIdeas(c *gin.Context) {
	st, _, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query parameter q is required")
		return
	}
	limit := clampLimit(c.Query("limit"), 20, 100)

	ideas := st.Ideas()
	idx := search.NewIdeaIndex(ideas)
	hits := idx.TopK(q, limit)

	byID := make(map[string]domain.Idea, len(ideas))
	for _, i := range ideas {
		byID[i.ID] = i
	}
	out := make([]domain.Idea, 0, len(hits))
	for _, hit := range hits {
		if i, found := byID[hit.IdeaID]; found {
			out = append(out, i)
		}
	}
	ok(c, http.StatusOK, SearchResultsResponse{Ideas: out, Query: q})
}

// MyIdeas godoc
// @ID          myIdeas
// @Summary     List the current user's ideas
// @Description Returns the cached ideas authored by the signed-in user, including anonymous ones.
// @Tags        Ideas
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.ListIdeasResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /ideas/mine [get]
func (h *Handlers) MyIdeas(c *gin.Context) {
	st, user, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	ideas := h.ideaSvc.Mine(st, user.ID)
	ok(c, http.StatusOK, ListIdeasResponse{Ideas: ideas, Total: len(ideas)})
}

// DecidedIdeas godoc
// @ID          decidedIdeas
// @Summary     List decided ideas
// @Description Returns the cached ideas with the verdict given in the path, for the approved and rejected screens.
// @Tags        Ideas
// @Produce     json
// @Security    BearerAuth
//
// @Param       verdict  path  string  true  "Decision outcome"  Enums(approved, rejected)
//
// @Success     200  {object}  handlers.ListIdeasResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /ideas/decided/{verdict} [get]
func (h *Handlers) DecidedIdeas(c *gin.Context) {
	st, _, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	var status domain.IdeaStatus
	switch c.Param("verdict") {
	case "approved":
		status = domain.StatusApproved
	case "rejected":
		status = domain.StatusRejected
	default:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "verdict must be approved or rejected")
		return
	}
	ideas := h.ideaSvc.ByStatus(st, status)
	ok(c, http.StatusOK, ListIdeasResponse{Ideas: ideas, Total: len(ideas)})
}

// PendingReview godoc
// @ID          pendingReview
// @Summary     Direction review queue
// @Description Returns the top ideas awaiting a direction decision, ranked by combined score.
// @Tags        Direction
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.ListIdeasResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "Direction role required"
// @Router      /ideas/pending-review [get]
func (h *Handlers) PendingReview(c *gin.Context) {
	st, user, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	if !user.IsDirection {
		fail(c, http.StatusForbidden, ErrCodeDirectionRequired, "direction role required")
		return
	}
	ideas := h.ideaSvc.PendingReview(st, h.pendingLimit)
	ok(c, http.StatusOK, ListIdeasResponse{Ideas: ideas, Total: len(ideas)})
}

// ListCategories godoc
// @ID          listCategories
// @Summary     List categories
// @Description Returns the categories cached at session bootstrap.
// @Tags        Categories
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {array}   domain.Category
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /categories [get]
func (h *Handlers) ListCategories(c *gin.Context) {
	st, _, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	cats := st.Categories()
	if cats == nil {
		cats = []domain.Category{}
	}
	ok(c, http.StatusOK, cats)
}

// GetReviewCycle godoc
// @ID          getReviewCycle
// @Summary     Active review cycle
// @Description Returns the active review cycle and the days remaining until its review date.
// @Tags        Direction
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.ReviewCycleResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /review-cycle [get]
func (h *Handlers) GetReviewCycle(c *gin.Context) {
	st, _, okAuth := sessionOrFail(c)
	if !okAuth {
		return
	}
	cycle := st.CurrentCycle()
	resp := ReviewCycleResponse{Cycle: cycle}
	if cycle != nil {
		resp.DaysUntilReview = cycle.DaysUntilReview(time.Now().UTC())
	}
	ok(c, http.StatusOK, resp)
}

// clampLimit parses a limit query param, bounding it to [1, max] with the
// given default for absent or invalid input.
func clampLimit(raw string, def, max int) int {
	n := utils.AtoiDefault(raw, def)
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	return n
}
