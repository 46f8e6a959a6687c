package repositoryImp

import (
	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/records/repository"
)

func dateRange(q *gorm.DB, from, to string) *gorm.DB {
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}
	return q
}

func deleteOwned(db *gorm.DB, model any, userKey, id string) (bool, error) {
	res := db.Where("user_key = ? AND id = ?", userKey, id).Delete(model)
	return res.RowsAffected > 0, res.Error
}

type recordRepo struct{ db *gorm.DB }

func NewRecordRepo(db *gorm.DB) repository.RecordRepository { return &recordRepo{db} }

func (r *recordRepo) Create(rec *entities.FarmRecord) error { return r.db.Create(rec).Error }

func (r *recordRepo) Update(rec *entities.FarmRecord) error { return r.db.Save(rec).Error }

func (r *recordRepo) FindByID(userKey, id string) (*entities.FarmRecord, error) {
	var out entities.FarmRecord
	if err := r.db.Where("user_key = ? AND id = ?", userKey, id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *recordRepo) Delete(userKey, id string) (bool, error) {
	return deleteOwned(r.db, &entities.FarmRecord{}, userKey, id)
}

func (r *recordRepo) List(userKey, from, to string) ([]entities.FarmRecord, error) {
	q := dateRange(r.db.Model(&entities.FarmRecord{}).Where("user_key = ?", userKey), from, to)
	var list []entities.FarmRecord
	return list, q.Order("date desc, id desc").Find(&list).Error
}

type activityRepo struct{ db *gorm.DB }

func NewActivityRepo(db *gorm.DB) repository.ActivityRepository { return &activityRepo{db} }

func (r *activityRepo) Create(a *entities.FarmActivity) error { return r.db.Create(a).Error }

func (r *activityRepo) Delete(userKey, id string) (bool, error) {
	return deleteOwned(r.db, &entities.FarmActivity{}, userKey, id)
}

func (r *activityRepo) List(userKey, from, to string) ([]entities.FarmActivity, error) {
	q := dateRange(r.db.Model(&entities.FarmActivity{}).Where("user_key = ?", userKey), from, to)
	var list []entities.FarmActivity
	return list, q.Order("date desc, id desc").Find(&list).Error
}

type productionRepo struct{ db *gorm.DB }

func NewProductionRepo(db *gorm.DB) repository.ProductionRepository { return &productionRepo{db} }

func (r *productionRepo) Create(p *entities.FarmProduction) error { return r.db.Create(p).Error }

func (r *productionRepo) Delete(userKey, id string) (bool, error) {
	return deleteOwned(r.db, &entities.FarmProduction{}, userKey, id)
}

func (r *productionRepo) List(userKey string) ([]entities.FarmProduction, error) {
	var list []entities.FarmProduction
	return list, r.db.Where("user_key = ?", userKey).Order("harvest_date desc, id desc").Find(&list).Error
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepo(db *gorm.DB) repository.InventoryRepository { return &inventoryRepo{db} }

func (r *inventoryRepo) Create(i *entities.InventoryItem) error { return r.db.Create(i).Error }

func (r *inventoryRepo) Update(i *entities.InventoryItem) error { return r.db.Save(i).Error }

func (r *inventoryRepo) FindByID(userKey, id string) (*entities.InventoryItem, error) {
	var out entities.InventoryItem
	if err := r.db.Where("user_key = ? AND id = ?", userKey, id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *inventoryRepo) Delete(userKey, id string) (bool, error) {
	return deleteOwned(r.db, &entities.InventoryItem{}, userKey, id)
}

func (r *inventoryRepo) List(userKey string) ([]entities.InventoryItem, error) {
	var list []entities.InventoryItem
	return list, r.db.Where("user_key = ?", userKey).Order("category asc, name asc").Find(&list).Error
}
