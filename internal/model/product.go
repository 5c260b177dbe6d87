package model

import (
	"fmt"
	"time"
)

// Product types sold by the store.
const (
	TypeAlbum  = "album"
	TypeNovel  = "novel"
	TypeArt    = "art"
	TypeTShirt = "tshirt"
)

// Product represents a catalog entry. Price is stored in minor currency
// units (cents) to avoid floating point rounding.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Image        string `json:"image"`
	Type         string `json:"type"`
	Featured     bool   `json:"featured"`
	PreorderGoal *int   `json:"preorderGoal"`
	Preorders    int    `json:"preorders"`
	DownloadLink string `json:"downloadLink"`
}

// InitMeta assigns the product its identifier. IDs are built from the
// product type and the submission time in milliseconds; uniqueness holds
// by construction only, it is never checked against the catalog.
func (p *Product) InitMeta() {
	p.ID = fmt.Sprintf("%s-%d", p.Type, time.Now().UnixMilli())
}
