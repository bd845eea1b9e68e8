package models

import (
	"github.com/shopspring/decimal"
)

const (
	CategoryAll   = "all"
	CategoryShoes = "shoes"
	CategorySocks = "socks"
	CategoryBags  = "bags"
)

// Product is a read-only catalog entry. The full set is embedded at build
// time and validated once at startup; nothing mutates a Product afterwards.
type Product struct {
	ID            int             `json:"id" validate:"required,gt=0"`
	Name          string          `json:"name" validate:"required"`
	Slug          string          `json:"-"`
	Category      string          `json:"category" validate:"required,oneof=shoes socks bags"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice,omitempty"`
	Image         string          `json:"image"`
	Gallery       []string        `json:"gallery,omitempty"`
	Video         string          `json:"video,omitempty"`
	Rating        float64         `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int             `json:"reviews" validate:"gte=0"`
	IsNew         bool            `json:"isNew,omitempty"`
	IsSale        bool            `json:"isSale,omitempty"`
	Colors        []string        `json:"colors" validate:"required,min=1"`
	Sizes         []string        `json:"sizes" validate:"required,min=1"`
	Description   string          `json:"description" validate:"required"`
}

type CategoryOption struct {
	Value string
	Label string
}

func CategoryOptions() []CategoryOption {
	return []CategoryOption{
		{Value: CategoryAll, Label: "All Products"},
		{Value: CategoryShoes, Label: "Shoes"},
		{Value: CategorySocks, Label: "Socks"},
		{Value: CategoryBags, Label: "Bags"},
	}
}
