package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AssistantService talks to an Ollama-compatible chat API on behalf of a
// user. The engine treats the model as an opaque collaborator: user id and
// free-text message in, text answer out. The menu context it sees is already
// filtered by role so VIP-only dishes never reach non-VIP suggestions.
type AssistantService struct {
	httpc   *http.Client
	users   *UserService
	catalog *CatalogService
	BaseURL string
	Model   string
}

func NewAssistantService(users *UserService, catalog *CatalogService, baseURL, model string) *AssistantService {
	return &AssistantService{
		httpc:   &http.Client{Timeout: 120 * time.Second},
		users:   users,
		catalog: catalog,
		BaseURL: baseURL,
		Model:   model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

// Chat answers a free-text question about the menu
func (s *AssistantService) Chat(ctx context.Context, userID uint, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", newError(KindInvalidInput, "message is required")
	}

	user, err := s.users.Get(userID)
	if err != nil {
		return "", err
	}
	if !user.IsActive {
		return "", newError(KindAccountInactive, "account is deactivated")
	}
	if user.IsBlacklisted {
		return "", newError(KindAccountBlacklisted, "account is blacklisted")
	}

	dishes, err := s.catalog.ListVisibleTo(user.Role)
	if err != nil {
		return "", err
	}

	var menu strings.Builder
	for _, d := range dishes {
		fmt.Fprintf(&menu, "- %s: $%s — %s\n", d.Name, d.Price.StringFixed(2), d.Description)
	}
	menuText := menu.String()
	if menuText == "" {
		menuText = "No dishes available."
	}

	prompt := fmt.Sprintf(`You are an assistant for a restaurant ordering system.
You see the following menu:

%s
The user has the role: %s.

The user says:
"""%s"""

Recommend 2-5 dishes from the menu that fit the request. Mention dish names
and prices clearly and keep the answer concise.`, menuText, user.Role, message)

	body, err := json.Marshal(chatRequest{
		Model:    s.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned %s", res.Status)
	}

	var out chatResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode assistant response: %w", err)
	}
	return out.Message.Content, nil
}
