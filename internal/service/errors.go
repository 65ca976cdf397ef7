package service

import (
	"errors"
	"fmt"

	"linkhop/internal/models"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrInternal        = errors.New("failed, please try again")
	ErrValidation      = errors.New("all fields are required")

	ErrInvalidURL       = errors.New("invalid url: must be an absolute http or https url")
	ErrInvalidSlug      = errors.New("custom slug can only contain letters, numbers, hyphens and underscores")
	ErrSlugTaken        = errors.New("this custom url is already taken")
	ErrDomainAccess     = errors.New("you don't have access to this domain")
	ErrLinkLimitReached = errors.New("link limit reached")
	ErrLinkNotFound     = errors.New("link not found")

	ErrInvalidDomain = errors.New("domain can only contain letters, numbers, and hyphens")
	ErrDomainTaken   = errors.New("domain already in use")

	ErrUserExists         = errors.New("email already in use")
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidPlan        = errors.New("unknown plan")
)

// LimitError is returned when the owner's plan does not allow another link.
type LimitError struct {
	Plan  models.Plan
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("You've reached the maximum number of links for the %s plan. Please upgrade to create more links.", e.Plan)
}

func (e *LimitError) Is(target error) bool {
	return target == ErrLinkLimitReached
}
