package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cropwise/entities"
	"cropwise/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Find(emailKey string) (*entities.UserProfile, error) {
	var p entities.UserProfile
	if err := r.db.Where("email_key = ?", emailKey).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *userRepo) Upsert(p *entities.UserProfile) error {
	cols := []string{"email", "name", "phone", "location", "updated_at"}
	if p.Theme != "" {
		cols = append(cols, "theme")
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email_key"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(p).Error
}

func (r *userRepo) SetTheme(emailKey, email, theme string) error {
	p := entities.UserProfile{EmailKey: emailKey, Email: email, Theme: theme}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"theme", "updated_at"}),
	}).Create(&p).Error
}
