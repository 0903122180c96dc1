package boardapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the board store REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new board store HTTP client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// ListBoards fetches the boards the token's user is a member of.
func (c *Client) ListBoards(ctx context.Context, token string) ([]Board, error) {
	url := fmt.Sprintf("%s/api/boards", c.baseURL)

	var boards []Board
	if err := c.get(ctx, url, token, &boards); err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// ListLists fetches the lists of a board, sorted by position by the backend.
// Response order is preserved.
func (c *Client) ListLists(ctx context.Context, token, boardID string) ([]List, error) {
	url := fmt.Sprintf("%s/api/lists/%s", c.baseURL, boardID)

	var lists []List
	if err := c.get(ctx, url, token, &lists); err != nil {
		return nil, fmt.Errorf("failed to list lists for board %s: %w", boardID, err)
	}
	return lists, nil
}

// ListCards fetches all cards of a board.
func (c *Client) ListCards(ctx context.Context, token, boardID string) ([]Card, error) {
	url := fmt.Sprintf("%s/api/cards/%s", c.baseURL, boardID)

	var cards []Card
	if err := c.get(ctx, url, token, &cards); err != nil {
		return nil, fmt.Errorf("failed to list cards for board %s: %w", boardID, err)
	}
	return cards, nil
}

// CreateCard creates a new card via POST /api/cards.
func (c *Client) CreateCard(ctx context.Context, token string, req CreateCardRequest) (*Card, error) {
	url := fmt.Sprintf("%s/api/cards", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create card request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create card request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call board API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("board API create card error %d: %s", resp.StatusCode, string(raw))
	}

	var card Card
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("failed to decode create card response: %w", err)
	}
	return &card, nil
}

// get issues an authorized GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, url, token string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call board API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("board API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode board API response: %w", err)
	}
	return nil
}

// ---- Request/Response types scoped to this package ----

// Board is the board store API board object.
type Board struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	OwnerID     string   `json:"owner_id"`
	Members     []string `json:"members"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// List is the board store API list object.
type List struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	BoardID  string `json:"board_id"`
	Position int    `json:"position"`
}

// Card is the board store API card object.
type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ListID      string   `json:"list_id"`
	BoardID     string   `json:"board_id"`
	Position    int      `json:"position"`
	Priority    string   `json:"priority"`
	Labels      []string `json:"labels"`
	DueDate     string   `json:"due_date,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// CreateCardRequest is the body for POST /api/cards.
type CreateCardRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ListID      string   `json:"list_id"`
	BoardID     string   `json:"board_id"`
	Position    int      `json:"position"`
	Priority    string   `json:"priority"`
	Labels      []string `json:"labels,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
}
