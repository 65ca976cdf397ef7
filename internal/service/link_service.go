package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"linkhop/internal/models"
	"linkhop/internal/repository"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024
)

type LinkService struct {
	links   *repository.LinkRepository
	baseURL string
	log     *zap.Logger
	newSlug func() (string, error)
}

func NewLinkService(links *repository.LinkRepository, baseURL string, log *zap.Logger) *LinkService {
	return &LinkService{
		links:   links,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		log:     log,
		newSlug: generateSlug,
	}
}

// Create validates and stores a new short link for owner. Checks run in a fixed order:
// authentication, url, custom slug collision, domain ownership, plan quota.
func (s *LinkService) Create(ctx context.Context, owner *models.User, originalURL, customSlug, domain string) (*models.Link, error) {
	if owner == nil {
		return nil, ErrUnauthenticated
	}

	originalURL = strings.TrimSpace(originalURL)
	customSlug = strings.TrimSpace(customSlug)
	domain = strings.TrimSpace(domain)

	if !validURL(originalURL) {
		return nil, ErrInvalidURL
	}

	if customSlug != "" {
		if !customSlugRe.MatchString(customSlug) {
			return nil, ErrInvalidSlug
		}
		taken, err := s.links.Exists(ctx, domain, customSlug)
		if err != nil {
			return nil, s.internal("link.create", err)
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}

	if domain != "" && !owner.OwnsDomain(domain) {
		return nil, ErrDomainAccess
	}

	count, err := s.links.CountByUser(ctx, owner.ID)
	if err != nil {
		return nil, s.internal("link.create", err)
	}
	if err := CanCreateLink(owner.Plan, count); err != nil {
		return nil, err
	}

	link := &models.Link{
		UserID:       owner.ID,
		OriginalURL:  originalURL,
		Domain:       domain,
		IsCustomSlug: customSlug != "",
	}

	if link.IsCustomSlug {
		link.Slug = customSlug
		if err := s.links.Create(ctx, link); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return nil, ErrSlugTaken
			}
			return nil, s.internal("link.create", err)
		}
		return link, nil
	}

	for attempt := 1; ; attempt++ {
		link.Slug, err = s.newSlug()
		if err != nil {
			return nil, s.internal("link.create", err)
		}
		link.ID = uuid.Nil
		err = s.links.Create(ctx, link)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) || attempt == maxSlugAttempts {
			return nil, s.internal("link.create", err)
		}
		s.log.Warn("generated slug collided, retrying", zap.String("slug", link.Slug), zap.Int("attempt", attempt))
	}
}

// List returns the owner's links, newest first.
func (s *LinkService) List(ctx context.Context, owner *models.User) ([]models.Link, error) {
	if owner == nil {
		return []models.Link{}, nil
	}
	links, err := s.links.ListByUser(ctx, owner.ID)
	if err != nil {
		return nil, s.internal("link.list", err)
	}
	return links, nil
}

// Delete removes the owner's link together with its click log.
func (s *LinkService) Delete(ctx context.Context, owner *models.User, id uuid.UUID) error {
	if owner == nil {
		return ErrUnauthenticated
	}
	deleted, err := s.links.DeleteForUser(ctx, id, owner.ID)
	if err != nil {
		return s.internal("link.delete", err)
	}
	if !deleted {
		return ErrLinkNotFound
	}
	return nil
}

// QRCode renders the public short url of the owner's link as a size x size PNG.
func (s *LinkService) QRCode(ctx context.Context, owner *models.User, id uuid.UUID, size int) ([]byte, error) {
	if owner == nil {
		return nil, ErrUnauthenticated
	}
	link, err := s.links.GetByIDForUser(ctx, id, owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, s.internal("link.qr", err)
	}

	if size < MinQRSize || size > MaxQRSize {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(s.ShortURL(link), qrcode.Medium, size)
	if err != nil {
		return nil, s.internal("link.qr", err)
	}
	return png, nil
}

// ShortURL is /r/<slug> for direct links and /<domain>/<slug> otherwise.
func (s *LinkService) ShortURL(link *models.Link) string {
	if link.Domain == "" {
		return s.baseURL + "/r/" + link.Slug
	}
	return s.baseURL + "/" + link.Domain + "/" + link.Slug
}

func (s *LinkService) internal(op string, err error) error {
	s.log.Error("link operation failed", zap.String("op", op), zap.Error(err))
	return ErrInternal
}

func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
