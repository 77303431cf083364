package gateway

import (
	"context"
	"strconv"

	"github.com/devfriend/devfriend/models"
)

type gmailProfile struct {
	EmailAddress  string `json:"emailAddress"`
	MessagesTotal int    `json:"messagesTotal"`
	ThreadsTotal  int    `json:"threadsTotal"`
}

type gmailLabel struct {
	ID             string `json:"id"`
	MessagesUnread int    `json:"messagesUnread"`
}

type gmailMessageList struct {
	Messages []struct {
		ID       string `json:"id"`
		ThreadID string `json:"threadId"`
	} `json:"messages"`
	NextPageToken string `json:"nextPageToken"`
}

type gmailMessage struct {
	ID      string `json:"id"`
	Snippet string `json:"snippet"`
	Payload struct {
		Headers []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"headers"`
	} `json:"payload"`
	InternalDate string `json:"internalDate"`
}

func (g *gateway) gmailSummary(ctx context.Context, accessToken string) (models.ProviderSummary, error) {
	var profile gmailProfile
	if err := g.getJSON(ctx, accessToken, g.urls.Gmail+"/gmail/v1/users/me/profile", nil, &profile); err != nil {
		return models.ProviderSummary{}, err
	}

	var unread gmailLabel
	if err := g.getJSON(ctx, accessToken, g.urls.Gmail+"/gmail/v1/users/me/labels/UNREAD", nil, &unread); err != nil {
		return models.ProviderSummary{}, err
	}

	return models.ProviderSummary{
		Identity:    profile.EmailAddress,
		UnreadCount: unread.MessagesUnread,
		TotalCount:  profile.MessagesTotal,
		FetchedAt:   g.now(),
	}, nil
}

func (g *gateway) gmailList(ctx context.Context, accessToken string, opts models.ListOptions) ([]models.ProviderItem, error) {
	query := map[string]string{
		"maxResults": strconv.Itoa(opts.Limit),
	}
	if opts.Query != "" {
		query["q"] = opts.Query
	}
	if opts.Cursor != "" {
		query["pageToken"] = opts.Cursor
	}

	var list gmailMessageList
	if err := g.getJSON(ctx, accessToken, g.urls.Gmail+"/gmail/v1/users/me/messages", query, &list); err != nil {
		return nil, err
	}

	items := make([]models.ProviderItem, 0, len(list.Messages))
	for _, ref := range list.Messages {
		var msg gmailMessage
		metaQuery := map[string]string{"format": "metadata"}
		if err := g.getJSON(ctx, accessToken, g.urls.Gmail+"/gmail/v1/users/me/messages/"+ref.ID, metaQuery, &msg); err != nil {
			return nil, err
		}

		item := models.ProviderItem{
			"id":      msg.ID,
			"snippet": msg.Snippet,
		}
		for _, header := range msg.Payload.Headers {
			switch header.Name {
			case "From":
				item["from"] = header.Value
			case "Subject":
				item["title"] = header.Value
			case "Date":
				item["ts"] = header.Value
			}
		}
		items = append(items, item)
	}

	return items, nil
}
