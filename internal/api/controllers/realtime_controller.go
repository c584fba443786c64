package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"vdpcza/pkg/realtime"
	"vdpcza/pkg/utils"
)

const sseKeepAlive = 25 * time.Second

// Subscriber is the read side of the realtime hub.
type Subscriber interface {
	Subscribe(channel string) (<-chan realtime.Event, func())
}

type RealtimeController struct {
	hub       Subscriber
	keepAlive time.Duration
}

func NewRealtimeController(hub Subscriber) *RealtimeController {
	return &RealtimeController{hub: hub, keepAlive: sseKeepAlive}
}

func knownChannel(name string) bool {
	return name == realtime.ChannelMoods || name == realtime.ChannelGifts
}

// Stream godoc
// @Summary Server-sent change notifications
// @Description Streams row-change events for the moods or gifts channel until the client disconnects
// @Tags Realtime
// @Produce text/event-stream
// @Param channel path string true "moods | gifts"
// @Param access_token query string false "Bearer token for clients that cannot set headers"
// @Success 200 {string} string "event stream"
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /realtime/{channel} [get]
func (r *RealtimeController) Stream(c *gin.Context) {
	channel := c.Param("channel")
	if !knownChannel(channel) {
		utils.RespondError(c, http.StatusNotFound, "Unknown channel")
		return
	}

	events, cancel := r.hub.Subscribe(channel)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("ready", gin.H{"channel": channel})
	c.Writer.Flush()

	ticker := time.NewTicker(r.keepAlive)
	defer ticker.Stop()

	done := c.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(ev.Type, ev)
		case <-ticker.C:
			c.SSEvent("ping", gin.H{"at": time.Now().Unix()})
		}
		c.Writer.Flush()
	}
}
