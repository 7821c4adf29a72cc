package github

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/gitmarket/gitmarket/internal/config"
	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/pkg/clients"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	cfg := &config.Config{GitHubAPIURL: "https://api.github.test"}
	ctrl := gomock.NewController(t)

	client := clients.NewMockHTTPClientI(ctrl)
	return New(cfg, client), client
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		input     string
		owner     string
		name      string
		expectErr bool
	}{
		{input: "https://github.com/acme/widget", owner: "acme", name: "widget"},
		{input: "github.com/acme/widget.git", owner: "acme", name: "widget"},
		{input: "acme/widget", owner: "acme", name: "widget"},
		{input: "  acme/widget  ", owner: "acme", name: "widget"},
		{input: "http://www.github.com/Acme/Widget/issues/3", owner: "Acme", name: "Widget"},
		{input: "https://github.com/acme/widget?tab=readme", owner: "acme", name: "widget"},
		{input: "https://github.com/acme/widget.js/", owner: "acme", name: "widget.js"},
		{input: "acme/widget.git", owner: "acme", name: "widget"},
		{input: "not a url", expectErr: true},
		{input: "", expectErr: true},
		{input: "https://gitlab.com/acme/widget", expectErr: true},
		{input: "acme", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			owner, name, err := ParseReference(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrInvalidReference)
				assert.EqualError(t, err, "Invalid GitHub URL")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestClient_FetchRepo(t *testing.T) {
	client, httpClient := NewMock(t)
	url := "https://api.github.test/repos/Acme/Widget"
	body := []byte(`{
		"id": 42,
		"full_name": "Acme/Widget",
		"description": "A widget",
		"stargazers_count": 17,
		"language": "Go",
		"html_url": "https://github.com/Acme/Widget"
	}`)
	description := "A widget"
	language := "Go"

	tests := []struct {
		name        string
		prepareMock func()
		expected    *domain.Repo
		errKind     error
	}{
		{
			name: "Metadata normalized",
			prepareMock: func() {
				httpClient.EXPECT().Get(gomock.Any(), url, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, h http.Header) (int, []byte, http.Header, error) {
						assert.Equal(t, acceptHeader, h.Get("Accept"))
						return http.StatusOK, body, http.Header{}, nil
					})
			},
			expected: &domain.Repo{
				GitHubID:    42,
				Owner:       "acme",
				Name:        "widget",
				FullName:    "Acme/Widget",
				Description: &description,
				Stars:       17,
				Language:    &language,
				URL:         "https://github.com/Acme/Widget",
			},
		},
		{
			name: "Missing repository",
			prepareMock: func() {
				httpClient.EXPECT().Get(gomock.Any(), url, gomock.Any()).Return(http.StatusNotFound, []byte(`{}`), http.Header{}, nil)
			},
			errKind: domain.ErrNotFound,
		},
		{
			name: "Rate limited",
			prepareMock: func() {
				httpClient.EXPECT().Get(gomock.Any(), url, gomock.Any()).Return(http.StatusForbidden, []byte(`{}`), http.Header{}, nil)
			},
			errKind: domain.ErrNotFound,
		},
		{
			name: "Provider down",
			prepareMock: func() {
				httpClient.EXPECT().Get(gomock.Any(), url, gomock.Any()).Return(http.StatusBadGateway, nil, http.Header{}, nil)
			},
			errKind: domain.ErrUnavailable,
		},
		{
			name: "Transport error",
			prepareMock: func() {
				httpClient.EXPECT().Get(gomock.Any(), url, gomock.Any()).Return(0, nil, nil, errors.New("timeout"))
			},
			errKind: domain.ErrUnavailable,
		},
		{
			name: "Malformed body",
			prepareMock: func() {
				httpClient.EXPECT().Get(gomock.Any(), url, gomock.Any()).Return(http.StatusOK, []byte(`{`), http.Header{}, nil)
			},
			errKind: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			repo, err := client.FetchRepo(context.Background(), "Acme", "Widget")
			if tt.errKind != nil {
				assert.ErrorIs(t, err, tt.errKind)
				assert.Nil(t, repo)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, repo)
		})
	}
}

func TestClient_FetchIssues(t *testing.T) {
	client, httpClient := NewMock(t)
	url := "https://api.github.test/repos/acme/widget/issues?per_page=30&sort=updated&state=open"

	t.Run("Pull requests are filtered and labels defaulted", func(t *testing.T) {
		body := []byte(`[
			{
				"number": 7,
				"title": "Crash on start",
				"html_url": "https://github.com/acme/widget/issues/7",
				"state": "open",
				"labels": [{"name": "bug", "color": "d73a4a"}, {"name": "help wanted"}],
				"user": {"login": "alice", "avatar_url": "https://avatars.test/alice"},
				"created_at": "2024-03-01T10:00:00Z",
				"comments": 3
			},
			{
				"number": 8,
				"title": "Fix crash",
				"html_url": "https://github.com/acme/widget/pull/8",
				"state": "open",
				"user": {"login": "bob", "avatar_url": "https://avatars.test/bob"},
				"created_at": "2024-03-02T10:00:00Z",
				"pull_request": {"url": "https://api.github.com/repos/acme/widget/pulls/8"}
			}
		]`)
		httpClient.EXPECT().Get(gomock.Any(), url, gomock.Any()).Return(http.StatusOK, body, http.Header{}, nil)

		issues, err := client.FetchIssues(context.Background(), "acme", "widget")

		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, domain.Issue{
			Number: 7,
			Title:  "Crash on start",
			URL:    "https://github.com/acme/widget/issues/7",
			State:  "open",
			Labels: []domain.Label{
				{Name: "bug", Color: "d73a4a"},
				{Name: "help wanted", Color: "ccc"},
			},
			Author:    domain.IssueAuthor{Login: "alice", AvatarURL: "https://avatars.test/alice"},
			CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			Comments:  3,
		}, issues[0])
	})

	t.Run("Non-success status", func(t *testing.T) {
		httpClient.EXPECT().Get(gomock.Any(), url, gomock.Any()).Return(http.StatusNotFound, nil, http.Header{}, nil)

		_, err := client.FetchIssues(context.Background(), "acme", "widget")
		assert.Error(t, err)
	})

	t.Run("Transport error", func(t *testing.T) {
		httpClient.EXPECT().Get(gomock.Any(), url, gomock.Any()).Return(0, nil, nil, errors.New("timeout"))

		_, err := client.FetchIssues(context.Background(), "acme", "widget")
		assert.Error(t, err)
	})
}
