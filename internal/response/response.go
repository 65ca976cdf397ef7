package response

import (
	"time"

	"linkhop/internal/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Plan      string    `json:"plan"`
	Domains   []string  `json:"domains"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Plan:      string(u.Plan),
		Domains:   u.DomainNames(),
		CreatedAt: u.CreatedAt,
	}
}

type UserRegisterResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

type LinkResponse struct {
	ID           string    `json:"id"`
	OriginalURL  string    `json:"original_url"`
	Slug         string    `json:"slug"`
	Domain       string    `json:"domain"`
	ShortURL     string    `json:"short_url"`
	IsCustomSlug bool      `json:"is_custom_slug"`
	Clicks       int64     `json:"clicks"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewLinkResponse(l *models.Link, shortURL string) LinkResponse {
	return LinkResponse{
		ID:           l.ID.String(),
		OriginalURL:  l.OriginalURL,
		Slug:         l.Slug,
		Domain:       l.Domain,
		ShortURL:     shortURL,
		IsCustomSlug: l.IsCustomSlug,
		Clicks:       l.Clicks,
		CreatedAt:    l.CreatedAt,
	}
}

type DomainsResponse struct {
	Domains []string `json:"domains"`
}

type PlanResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	MaxLinks    int      `json:"max_links"`
	MaxDomains  int      `json:"max_domains"`
	Features    []string `json:"features"`
	Current     bool     `json:"current"`
}
