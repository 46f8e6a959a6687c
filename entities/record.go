package entities

import "time"

const (
	RecordExpense = "expense"
	RecordSale    = "sale"
)

// FarmRecord is a money movement: an expense or a sale.
type FarmRecord struct {
	ID            string `gorm:"primaryKey" json:"id"`
	UserKey       string `gorm:"index" json:"-"`
	Type          string `gorm:"index" json:"type"` // expense|sale
	Date          string `gorm:"index" json:"date"` // YYYY-MM-DD
	Description   string `json:"description"`
	Amount        int64  `json:"amount"`
	Category      string `json:"category"`
	Supplier      string `json:"supplier,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Customer      string `json:"customer,omitempty"`
	Quantity      string `json:"quantity,omitempty"`
	UnitPrice     string `json:"unit_price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FarmActivity struct {
	ID         string   `gorm:"primaryKey" json:"id"`
	UserKey    string   `gorm:"index" json:"-"`
	Activity   string   `json:"activity"` // Planting|Watering|Fertilizing|Harvesting|...
	Field      string   `json:"field"`
	Area       float64  `json:"area"` // hectares
	Date       string   `gorm:"index" json:"date"`
	Cost       *int64   `json:"cost,omitempty"`
	LaborHours *float64 `json:"labor_hours,omitempty"`
	Details    string   `json:"details,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type FarmProduction struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	UserKey      string  `gorm:"index" json:"-"`
	Crop         string  `json:"crop"`
	PlantingDate string  `json:"planting_date"`
	HarvestDate  string  `gorm:"index" json:"harvest_date"`
	Area         float64 `json:"area"`  // hectares
	Yield        float64 `json:"yield"` // kg
	Revenue      float64 `json:"revenue"`
	Cost         float64 `json:"cost"`

	CreatedAt time.Time `json:"created_at"`
}

type InventoryItem struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	UserKey  string  `gorm:"index" json:"-"`
	Name     string  `json:"name"`
	Category string  `json:"category"` // Seeds|Fertilizer|Pesticides|...
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unit_cost"`
	Status   string  `json:"status"` // Good|Low|Out

	CreatedAt time.Time `json:"created_at"`
}

func (i InventoryItem) TotalValue() float64 { return i.Quantity * i.UnitCost }
