package service

import (
	"errors"
	"io"

	"cropwise/entities"
	"cropwise/pkg/records"
)

var ErrNotFound = errors.New("not found")

type NewRecord struct {
	Type          string `json:"type" validate:"required,oneof=expense sale"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Description   string `json:"description" validate:"required"`
	Amount        int64  `json:"amount" validate:"gte=0"`
	Category      string `json:"category" validate:"required"`
	Supplier      string `json:"supplier"`
	PaymentMethod string `json:"payment_method"`
	Customer      string `json:"customer"`
	Quantity      string `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
}

// RecordPatch changes only the non-nil fields.
type RecordPatch struct {
	Type          *string `json:"type" validate:"omitempty,oneof=expense sale"`
	Date          *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description   *string `json:"description"`
	Amount        *int64  `json:"amount" validate:"omitempty,gte=0"`
	Category      *string `json:"category"`
	Supplier      *string `json:"supplier"`
	PaymentMethod *string `json:"payment_method"`
	Customer      *string `json:"customer"`
	Quantity      *string `json:"quantity"`
	UnitPrice     *string `json:"unit_price"`
}

type NewActivity struct {
	Activity   string   `json:"activity" validate:"required"`
	Field      string   `json:"field" validate:"required"`
	Area       float64  `json:"area" validate:"gte=0"`
	Date       string   `json:"date" validate:"required,datetime=2006-01-02"`
	Cost       *int64   `json:"cost" validate:"omitempty,gte=0"`
	LaborHours *float64 `json:"labor_hours" validate:"omitempty,gte=0"`
	Details    string   `json:"details"`
}

type NewProduction struct {
	Crop         string  `json:"crop" validate:"required"`
	PlantingDate string  `json:"planting_date" validate:"omitempty,datetime=2006-01-02"`
	HarvestDate  string  `json:"harvest_date" validate:"required,datetime=2006-01-02"`
	Area         float64 `json:"area" validate:"gte=0"`
	Yield        float64 `json:"yield" validate:"gte=0"`
	Revenue      float64 `json:"revenue" validate:"gte=0"`
	Cost         float64 `json:"cost" validate:"gte=0"`
}

type NewInventoryItem struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unit_cost" validate:"gte=0"`
	Status   string  `json:"status" validate:"omitempty,oneof=Good Low Out"`
}

type InventoryPatch struct {
	Quantity *float64 `json:"quantity" validate:"omitempty,gte=0"`
	UnitCost *float64 `json:"unit_cost" validate:"omitempty,gte=0"`
	Status   *string  `json:"status" validate:"omitempty,oneof=Good Low Out"`
}

// Summary is the records dashboard for the current month.
type Summary struct {
	Financial records.MonthlySummary `json:"financial"`
	Area      records.AreaSummary    `json:"area"`
	Inventory map[string]string      `json:"inventory"`
}

type RecordsService interface {
	AddRecord(userKey string, in NewRecord) (*entities.FarmRecord, error)
	PatchRecord(userKey, id string, p RecordPatch) (*entities.FarmRecord, error)
	DeleteRecord(userKey, id string) error
	ListRecords(userKey string, f records.Filter) ([]entities.FarmRecord, error)

	AddActivity(userKey string, in NewActivity) (*entities.FarmActivity, error)
	DeleteActivity(userKey, id string) error
	ListActivities(userKey, from, to string) ([]entities.FarmActivity, error)

	AddProduction(userKey string, in NewProduction) (*entities.FarmProduction, error)
	DeleteProduction(userKey, id string) error
	ListProduction(userKey string) ([]entities.FarmProduction, error)
	ProductionByCrop(userKey string) ([]records.CropProduction, error)

	AddInventory(userKey string, in NewInventoryItem) (*entities.InventoryItem, error)
	PatchInventory(userKey, id string, p InventoryPatch) (*entities.InventoryItem, error)
	DeleteInventory(userKey, id string) error
	ListInventory(userKey string) ([]entities.InventoryItem, error)

	Summary(userKey string) (*Summary, error)
	Series(userKey string, months int) ([]records.MonthlySummary, error)
	Export(userKey string, f records.Filter, w io.Writer) error
}
