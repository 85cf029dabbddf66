package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"warcat/internal/model"
	"warcat/internal/service"
	"warcat/internal/storage"
)

// MeetingHandler handles meeting create/edit/list.
type MeetingHandler struct {
	meetings *service.MeetingService
}

func NewMeetingHandler(meetings *service.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetings: meetings}
}

// Create handles meeting creation
// @Router /api/meetings [post]
func (h *MeetingHandler) Create(c *gin.Context) {
	var req model.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": err.Error()})
		return
	}
	if _, err := h.meetings.Create(c.Request.Context(), &req); err != nil {
		log.Printf("[handler] create meeting: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"statusTxt": "success", "message": "Meeting added successfully"})
}

// Edit handles a partial meeting update keyed by the meetingId query
// @Router /api/meetings [put]
func (h *MeetingHandler) Edit(c *gin.Context) {
	meetingID := c.Query("meetingId")
	if meetingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": "meetingId is required"})
		return
	}
	var patch model.MeetingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": err.Error()})
		return
	}
	meeting, err := h.meetings.Edit(c.Request.Context(), meetingID, &patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"statusTxt": "error", "message": "Meeting not found"})
			return
		}
		log.Printf("[handler] edit meeting %s: %v", meetingID, err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"statusTxt": "success",
		"message":   "Meeting updated successfully",
		"meeting":   meeting,
	})
}

// List returns the meetings visible to the requesting user
// @Router /api/meetings [get]
func (h *MeetingHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	roleType := c.Query("role_type")

	meetings, err := h.meetings.List(c.Request.Context(), userID, roleType)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"statusTxt": "error", "message": "No meetings found for the user"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"statusTxt": "error", "message": "User is not authorized to access meetings"})
		default:
			log.Printf("[handler] list meetings for %s: %v", userID, err)
			internalError(c)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"statusTxt": "success", "meetings": meetings})
}
