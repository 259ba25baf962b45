package models

// ScoreVector holds the five score dimensions tracked per team. Every field
// is always present; a zero value means the dimension simply has not moved.
type ScoreVector struct {
	Profit    float64 `json:"expectedProfit" bson:"expectedProfit"`
	Liquidity float64 `json:"liquidity" bson:"liquidity"`
	Solvency  float64 `json:"solvency" bson:"solvency"`
	IT        float64 `json:"it" bson:"it"`
	Capacity  float64 `json:"capacity" bson:"capacity"`
}
