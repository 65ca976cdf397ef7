package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"linkhop/internal/models"
	"linkhop/internal/repository"

	"go.uber.org/zap"
)

var domainRe = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// reservedDomains are the first path segments of the router's own routes; a domain with one of
// these names would publish /<domain>/<slug> urls that never reach the domain redirect.
var reservedDomains = map[string]struct{}{
	"r":       {},
	"api":     {},
	"swagger": {},
	"healthz": {},
}

func validDomain(name string) bool {
	if !domainRe.MatchString(name) {
		return false
	}
	_, reserved := reservedDomains[strings.ToLower(name)]
	return !reserved
}

type DomainService struct {
	users *repository.UserRepository
	links *repository.LinkRepository
	log   *zap.Logger
}

func NewDomainService(users *repository.UserRepository, links *repository.LinkRepository, log *zap.Logger) *DomainService {
	return &DomainService{
		users: users,
		links: links,
		log:   log,
	}
}

func (s *DomainService) List(owner *models.User) []string {
	if owner == nil {
		return []string{}
	}
	return owner.DomainNames()
}

func (s *DomainService) Add(ctx context.Context, owner *models.User, name string) (*models.Domain, error) {
	if owner == nil {
		return nil, ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}
	if !validDomain(name) {
		return nil, ErrInvalidDomain
	}

	taken, err := s.users.DomainExists(ctx, name)
	if err != nil {
		return nil, s.internal("domain.add", err)
	}
	if taken {
		return nil, ErrDomainTaken
	}

	d, err := s.users.AddDomain(ctx, owner.ID, name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDomainTaken
		}
		return nil, s.internal("domain.add", err)
	}
	owner.Domains = append(owner.Domains, *d)
	return d, nil
}

// Rename moves oldName to newName and retags the owner's links. The two writes are
// separate statements; a redirect running in between may still see the old tag.
func (s *DomainService) Rename(ctx context.Context, owner *models.User, oldName, newName string) error {
	if owner == nil {
		return ErrUnauthenticated
	}
	oldName, newName = strings.TrimSpace(oldName), strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		return ErrValidation
	}
	if !validDomain(newName) {
		return ErrInvalidDomain
	}
	if !owner.OwnsDomain(oldName) {
		return ErrDomainAccess
	}

	taken, err := s.users.DomainExists(ctx, newName)
	if err != nil {
		return s.internal("domain.rename", err)
	}
	if taken {
		return ErrDomainTaken
	}

	if err := s.users.RenameDomain(ctx, owner.ID, oldName, newName); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return ErrDomainTaken
		case errors.Is(err, repository.ErrNotFound):
			return ErrDomainAccess
		}
		return s.internal("domain.rename", err)
	}

	retagged, err := s.links.RetagDomain(ctx, owner.ID, oldName, newName)
	if err != nil {
		return s.internal("domain.rename", err)
	}

	for i := range owner.Domains {
		if owner.Domains[i].Name == oldName {
			owner.Domains[i].Name = newName
		}
	}
	s.log.Info("domain renamed",
		zap.String("user_id", owner.ID.String()),
		zap.String("from", oldName),
		zap.String("to", newName),
		zap.Int64("links", retagged),
	)
	return nil
}

func (s *DomainService) internal(op string, err error) error {
	s.log.Error("domain operation failed", zap.String("op", op), zap.Error(err))
	return ErrInternal
}
