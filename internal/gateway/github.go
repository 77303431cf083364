package gateway

import (
	"context"
	"strconv"

	"github.com/devfriend/devfriend/models"
)

type githubUser struct {
	Login            string `json:"login"`
	Name             string `json:"name"`
	PublicRepos      int    `json:"public_repos"`
	TotalPrivateRepos int   `json:"total_private_repos"`
}

type githubNotification struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type githubRepo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	Stargazers  int    `json:"stargazers_count"`
	OpenIssues  int    `json:"open_issues_count"`
	UpdatedAt   string `json:"updated_at"`
	Language    string `json:"language"`
}

func (g *gateway) githubSummary(ctx context.Context, accessToken string) (models.ProviderSummary, error) {
	var user githubUser
	if err := g.getJSON(ctx, accessToken, g.urls.GitHub+"/user", nil, &user); err != nil {
		return models.ProviderSummary{}, err
	}

	// notifications double as the unread counter
	var notifications []githubNotification
	if err := g.getJSON(ctx, accessToken, g.urls.GitHub+"/notifications", nil, &notifications); err != nil {
		return models.ProviderSummary{}, err
	}

	return models.ProviderSummary{
		Identity:    user.Login,
		UnreadCount: len(notifications),
		TotalCount:  user.PublicRepos + user.TotalPrivateRepos,
		FetchedAt:   g.now(),
	}, nil
}

func (g *gateway) githubList(ctx context.Context, accessToken string, opts models.ListOptions) ([]models.ProviderItem, error) {
	query := map[string]string{
		"per_page": strconv.Itoa(opts.Limit),
		"sort":     "updated",
	}
	if opts.Cursor != "" {
		query["page"] = opts.Cursor
	}

	var repos []githubRepo
	if err := g.getJSON(ctx, accessToken, g.urls.GitHub+"/user/repos", query, &repos); err != nil {
		return nil, err
	}

	items := make([]models.ProviderItem, 0, len(repos))
	for _, repo := range repos {
		items = append(items, models.ProviderItem{
			"id":          repo.FullName,
			"title":       repo.Name,
			"snippet":     repo.Description,
			"url":         repo.HTMLURL,
			"ts":          repo.UpdatedAt,
			"private":     repo.Private,
			"stars":       repo.Stargazers,
			"open_issues": repo.OpenIssues,
			"language":    repo.Language,
		})
	}

	return items, nil
}
