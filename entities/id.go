package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewID returns a time-ordered push ID, so lexical order matches insert order.
func NewID() string { return uuid.Must(uuid.NewV7()).String() }

func fill(id *string) {
	if *id == "" {
		*id = NewID()
	}
}

func (r *FarmRecord) BeforeCreate(*gorm.DB) error      { fill(&r.ID); return nil }
func (a *FarmActivity) BeforeCreate(*gorm.DB) error    { fill(&a.ID); return nil }
func (p *FarmProduction) BeforeCreate(*gorm.DB) error  { fill(&p.ID); return nil }
func (i *InventoryItem) BeforeCreate(*gorm.DB) error   { fill(&i.ID); return nil }
func (g *GrowthEntry) BeforeCreate(*gorm.DB) error     { fill(&g.ID); return nil }
func (y *YieldPrediction) BeforeCreate(*gorm.DB) error { fill(&y.ID); return nil }
func (m *ChatMessage) BeforeCreate(*gorm.DB) error     { fill(&m.ID); return nil }
