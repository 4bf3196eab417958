package domain

// CREATE TABLE public.market_context (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     shoe_key         TEXT NOT NULL UNIQUE,
//     review_count     INT NOT NULL DEFAULT 0,
//     rating           NUMERIC NOT NULL DEFAULT 0,
//     popularity_score NUMERIC NOT NULL DEFAULT 0
// );

// MarketRecord is the persisted form of per-shoe market data, keyed
// "{brand}_{model}" to match ShoeRecord.Key.
type MarketRecord struct {
	ID              uint64  `gorm:"primaryKey;autoIncrement" json:"-"`
	ShoeKey         string  `gorm:"column:shoe_key;type:text;uniqueIndex" json:"shoe_key"`
	ReviewCount     int     `gorm:"column:review_count" json:"review_count"`
	Rating          float64 `gorm:"column:rating;type:numeric" json:"rating"`
	PopularityScore float64 `gorm:"column:popularity_score;type:numeric" json:"popularity_score"`
}

func (MarketRecord) TableName() string {
	return "market_context"
}

// MarketData is the in-memory view the scoring core consumes.
type MarketData struct {
	ReviewCount     int     `json:"review_count"`
	Rating          float64 `json:"rating"`
	PopularityScore float64 `json:"popularity_score"`
}

// MarketContext maps ShoeRecord.Key to market data. Absence of a key, or an
// empty map, is valid and scores neutrally.
type MarketContext map[string]MarketData
