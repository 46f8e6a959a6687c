package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/middleware"
	"cropwise/pkg/user"
	repo "cropwise/pkg/user/repository"
	"cropwise/pkg/user/service"
	"cropwise/pkg/validate"
)

type userSvc struct {
	r      repo.UserRepository
	themes *user.Debouncer
}

func NewUserService(r repo.UserRepository, themeDebounce time.Duration) service.UserService {
	s := &userSvc{r: r}
	s.themes = user.NewDebouncer(themeDebounce, s.writeTheme)
	return s
}

// writeTheme receives "emailKey" and "email|theme".
func (s *userSvc) writeTheme(key, value string) {
	email, theme, _ := strings.Cut(value, "|")
	if err := s.r.SetTheme(key, email, theme); err != nil {
		log.Printf("[user] save theme %s: %v", key, err)
		return
	}
	log.Printf("[user] theme %s=%s", key, theme)
}

func (s *userSvc) Save(sess middleware.Session, in service.ProfileInput) (*entities.UserProfile, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	p := &entities.UserProfile{
		EmailKey: sess.EmailKey,
		Email:    sess.Email,
		Name:     in.Name,
		Phone:    strings.TrimSpace(in.Phone),
		Location: strings.TrimSpace(in.Location),
		Theme:    in.Theme,
	}
	if err := s.r.Upsert(p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return s.Get(sess)
}

func (s *userSvc) Get(sess middleware.Session) (*entities.UserProfile, error) {
	p, err := s.r.Find(sess.EmailKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p, err = &entities.UserProfile{EmailKey: sess.EmailKey, Email: sess.Email}, nil
	}
	if err != nil {
		return nil, err
	}
	if v, ok := s.themes.Pending(sess.EmailKey); ok {
		_, p.Theme, _ = strings.Cut(v, "|")
	}
	if p.Theme == "" {
		p.Theme = service.DefaultTheme
	}
	return p, nil
}

func (s *userSvc) SetTheme(sess middleware.Session, theme string) error {
	if theme != "light" && theme != "dark" {
		return validate.New("theme")
	}
	s.themes.Submit(sess.EmailKey, sess.Email+"|"+theme)
	return nil
}

func (s *userSvc) Flush() { s.themes.Flush() }
