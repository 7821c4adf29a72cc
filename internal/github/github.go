package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gitmarket/gitmarket/internal/config"
	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/pkg/clients"
)

const (
	issuesPerPage     = 30
	defaultLabelColor = "ccc"
	acceptHeader      = "application/vnd.github+json"
	apiVersionHeader  = "X-GitHub-Api-Version"
	apiVersion        = "2022-11-28"
)

var (
	urlPattern       = regexp.MustCompile(`^(?:https?://)?(?:www\.)?github\.com/([A-Za-z0-9-]+)/([A-Za-z0-9._-]+?)(?:\.git)?(?:[/?#].*)?$`)
	shorthandPattern = regexp.MustCompile(`^([A-Za-z0-9-]+)/([A-Za-z0-9._-]+)$`)
)

// ParseReference extracts owner and repository name from a GitHub URL or an
// owner/repo shorthand.
func ParseReference(input string) (owner, name string, err error) {
	input = strings.TrimSpace(input)
	if m := urlPattern.FindStringSubmatch(input); m != nil {
		return m[1], m[2], nil
	}
	if m := shorthandPattern.FindStringSubmatch(input); m != nil {
		return m[1], strings.TrimSuffix(m[2], ".git"), nil
	}
	return "", "", domain.NewError(domain.ErrInvalidReference, "Invalid GitHub URL")
}

type repoResponse struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"full_name"`
	Description *string `json:"description"`
	Stars       int     `json:"stargazers_count"`
	Language    *string `json:"language"`
	HTMLURL     string  `json:"html_url"`
}

type issueResponse struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
	State   string `json:"state"`
	Labels  []struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	} `json:"labels"`
	User struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user"`
	CreatedAt   time.Time       `json:"created_at"`
	Comments    int             `json:"comments"`
	PullRequest json.RawMessage `json:"pull_request"`
}

type Client struct {
	baseURL string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: cfg.GitHubAPIURL,
		client:  client,
	}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Accept", acceptHeader)
	h.Set(apiVersionHeader, apiVersion)
	return h
}

// FetchRepo returns the repository metadata. Owner and name are stored
// lower-cased.
func (c *Client) FetchRepo(ctx context.Context, owner, name string) (*domain.Repo, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, url.PathEscape(owner), url.PathEscape(name))

	statusCode, body, _, err := c.client.Get(ctx, endpoint, c.headers())
	if err != nil {
		zap.L().Error("github repo request failed", zap.String("repo", owner+"/"+name), zap.Error(err))
		return nil, domain.NewError(domain.ErrUnavailable, "GitHub is unavailable")
	}
	if statusCode >= http.StatusInternalServerError {
		zap.L().Error("github repo request failed", zap.String("repo", owner+"/"+name), zap.Int("status", statusCode))
		return nil, domain.NewError(domain.ErrUnavailable, "GitHub is unavailable")
	}
	if statusCode != http.StatusOK {
		return nil, domain.NewError(domain.ErrNotFound, "Repository not found on GitHub")
	}

	var resp repoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		zap.L().Error("failed to parse github repo", zap.Error(err))
		return nil, domain.NewError(domain.ErrNotFound, "Repository not found on GitHub")
	}

	return &domain.Repo{
		GitHubID:    resp.ID,
		Owner:       strings.ToLower(owner),
		Name:        strings.ToLower(name),
		FullName:    resp.FullName,
		Description: resp.Description,
		Stars:       resp.Stars,
		Language:    resp.Language,
		URL:         resp.HTMLURL,
	}, nil
}

// FetchIssues returns up to 30 open issues, most recently updated first.
// Pull requests are dropped.
func (c *Client) FetchIssues(ctx context.Context, owner, name string) ([]domain.Issue, error) {
	query := url.Values{}
	query.Set("state", "open")
	query.Set("per_page", fmt.Sprint(issuesPerPage))
	query.Set("sort", "updated")
	endpoint := fmt.Sprintf("%s/repos/%s/%s/issues?%s", c.baseURL, url.PathEscape(owner), url.PathEscape(name), query.Encode())

	statusCode, body, _, err := c.client.Get(ctx, endpoint, c.headers())
	if err != nil {
		return nil, fmt.Errorf("fetch issues: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch issues: unexpected status %d", statusCode)
	}

	var resp []issueResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("fetch issues: %w", err)
	}

	issues := make([]domain.Issue, 0, len(resp))
	for _, item := range resp {
		if len(item.PullRequest) > 0 {
			continue
		}
		issues = append(issues, toIssue(item))
	}
	return issues, nil
}

func toIssue(item issueResponse) domain.Issue {
	labels := make([]domain.Label, 0, len(item.Labels))
	for _, l := range item.Labels {
		color := l.Color
		if color == "" {
			color = defaultLabelColor
		}
		labels = append(labels, domain.Label{Name: l.Name, Color: color})
	}

	return domain.Issue{
		Number: item.Number,
		Title:  item.Title,
		URL:    item.HTMLURL,
		State:  item.State,
		Labels: labels,
		Author: domain.IssueAuthor{
			Login:     item.User.Login,
			AvatarURL: item.User.AvatarURL,
		},
		CreatedAt: item.CreatedAt,
		Comments:  item.Comments,
	}
}
