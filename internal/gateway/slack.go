package gateway

import (
	"context"
	"fmt"
	"strconv"

	"github.com/devfriend/devfriend/models"
)

type slackAuthTest struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	Team  string `json:"team"`
	User  string `json:"user"`
}

type slackChannelList struct {
	OK       bool   `json:"ok"`
	Error    string `json:"error"`
	Channels []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		IsMember    bool   `json:"is_member"`
		UnreadCount int    `json:"unread_count"`
	} `json:"channels"`
}

type slackHistory struct {
	OK       bool   `json:"ok"`
	Error    string `json:"error"`
	Messages []struct {
		Type string `json:"type"`
		User string `json:"user"`
		Text string `json:"text"`
		TS   string `json:"ts"`
	} `json:"messages"`
}

// slackError translates the ok/error envelope. Slack answers HTTP 200 for
// almost everything, so token problems only show up here.
func slackError(code string) error {
	switch code {
	case "invalid_auth", "token_revoked", "token_expired", "account_inactive", "not_authed":
		return fmt.Errorf("%w: %s", ErrTokenRejected, code)
	default:
		return fmt.Errorf("%w: %s", ErrUpstreamUnavailable, code)
	}
}

func (g *gateway) slackSummary(ctx context.Context, accessToken string) (models.ProviderSummary, error) {
	var auth slackAuthTest
	if err := g.getJSON(ctx, accessToken, g.urls.Slack+"/auth.test", nil, &auth); err != nil {
		return models.ProviderSummary{}, err
	}
	if !auth.OK {
		return models.ProviderSummary{}, slackError(auth.Error)
	}

	var channels slackChannelList
	query := map[string]string{"types": "public_channel,private_channel", "limit": "200"}
	if err := g.getJSON(ctx, accessToken, g.urls.Slack+"/conversations.list", query, &channels); err != nil {
		return models.ProviderSummary{}, err
	}
	if !channels.OK {
		return models.ProviderSummary{}, slackError(channels.Error)
	}

	unread := 0
	for _, channel := range channels.Channels {
		if channel.UnreadCount > 0 {
			unread++
		}
	}

	return models.ProviderSummary{
		Identity:    auth.Team,
		UnreadCount: unread,
		TotalCount:  len(channels.Channels),
		FetchedAt:   g.now(),
	}, nil
}

// slackList returns recent messages. opts.Query selects the channel id; when
// empty the first channel the token is a member of is used.
func (g *gateway) slackList(ctx context.Context, accessToken string, opts models.ListOptions) ([]models.ProviderItem, error) {
	channelID := opts.Query
	if channelID == "" {
		var channels slackChannelList
		query := map[string]string{"types": "public_channel,private_channel", "limit": "50"}
		if err := g.getJSON(ctx, accessToken, g.urls.Slack+"/conversations.list", query, &channels); err != nil {
			return nil, err
		}
		if !channels.OK {
			return nil, slackError(channels.Error)
		}
		for _, channel := range channels.Channels {
			if channel.IsMember {
				channelID = channel.ID
				break
			}
		}
		if channelID == "" && len(channels.Channels) > 0 {
			channelID = channels.Channels[0].ID
		}
		if channelID == "" {
			return []models.ProviderItem{}, nil
		}
	}

	var history slackHistory
	query := map[string]string{
		"channel": channelID,
		"limit":   strconv.Itoa(opts.Limit),
	}
	if opts.Cursor != "" {
		query["cursor"] = opts.Cursor
	}
	if err := g.getJSON(ctx, accessToken, g.urls.Slack+"/conversations.history", query, &history); err != nil {
		return nil, err
	}
	if !history.OK {
		return nil, slackError(history.Error)
	}

	items := make([]models.ProviderItem, 0, len(history.Messages))
	for _, msg := range history.Messages {
		items = append(items, models.ProviderItem{
			"id":      msg.TS,
			"ts":      msg.TS,
			"snippet": msg.Text,
			"from":    msg.User,
			"channel": channelID,
		})
	}

	return items, nil
}
