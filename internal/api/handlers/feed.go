package handlers

import (
	"net/http"

	"github.com/pratik-mahalle/userboard/internal/api/middleware"
	"github.com/pratik-mahalle/userboard/internal/pkg/logger"
	"github.com/pratik-mahalle/userboard/internal/pkg/utils"
	"github.com/pratik-mahalle/userboard/internal/worker"
)

// FeedController starts and stops the random user feed
type FeedController interface {
	Start() bool
	Stop() bool
	Status() worker.FeedStatus
}

type FeedHandler struct {
	feed   FeedController
	logger *logger.Logger
}

func NewFeedHandler(feed FeedController, log *logger.Logger) *FeedHandler {
	return &FeedHandler{
		feed:   feed,
		logger: log.Component("feed_handler"),
	}
}

// Status returns the feed state
// @Summary Feed status
// @Tags Feed
// @Produce json
// @Success 200 {object} worker.FeedStatus "Feed state"
// @Router /api/v1/feed [get]
func (h *FeedHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, h.feed.Status())
}

// Start starts the feed. Starting a running feed is a no-op.
// @Summary Start feed
// @Tags Feed
// @Produce json
// @Success 200 {object} worker.FeedStatus "Feed state"
// @Router /api/v1/feed/start [post]
func (h *FeedHandler) Start(w http.ResponseWriter, r *http.Request) {
	message := "Feed started"
	if !h.feed.Start() {
		message = "Feed already running"
	}
	h.logRequest(r, message)
	utils.WriteSuccessWithMessage(w, http.StatusOK, message, h.feed.Status())
}

// Stop stops the feed. Stopping a stopped feed is a no-op.
// @Summary Stop feed
// @Tags Feed
// @Produce json
// @Success 200 {object} worker.FeedStatus "Feed state"
// @Router /api/v1/feed/stop [post]
func (h *FeedHandler) Stop(w http.ResponseWriter, r *http.Request) {
	message := "Feed stopped"
	if !h.feed.Stop() {
		message = "Feed not running"
	}
	h.logRequest(r, message)
	utils.WriteSuccessWithMessage(w, http.StatusOK, message, h.feed.Status())
}

func (h *FeedHandler) logRequest(r *http.Request, outcome string) {
	h.logger.WithFields(map[string]interface{}{
		"request_id": middleware.GetRequestID(r),
		"remote":     r.RemoteAddr,
	}).Info(outcome)
}
