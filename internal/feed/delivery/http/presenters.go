package http

import (
	"errors"
	"strings"

	"venue-calendar/internal/feed"
)

// --- Request DTOs ---

type feedURLReq struct {
	Create bool `form:"create"`
}

type setTokenReq struct {
	Token string `json:"token" binding:"required,max=256"`
}

func (r setTokenReq) validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return errors.New("token is required")
	}
	return nil
}

func (r setTokenReq) toInput() feed.SetTokenInput {
	return feed.SetTokenInput{Token: r.Token}
}

// --- Response DTOs ---

type feedURLResp struct {
	URL     string `json:"url"`
	Token   string `json:"token"`
	Created bool   `json:"created"`
}

func newFeedURLResp(o feed.FeedURLOutput) feedURLResp {
	return feedURLResp{
		URL:     o.URL,
		Token:   o.Token,
		Created: o.Created,
	}
}
