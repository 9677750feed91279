// Package v1 is the HTTP API of the winline service.
package v1

// Combination 中奖组合
type Combination struct {
	Symbol    int64   `json:"symbol"`    // 符号
	Positions []int64 `json:"positions"` // 中奖位置，严格递增
}

// DetectRequest carries one payline.
type DetectRequest struct {
	Line []int64 `json:"line"`
}

// DetectReply is the recorded evaluation id and its winning combinations,
// an empty array when the line did not win.
type DetectReply struct {
	Id           int64          `json:"id"`
	Combinations []*Combination `json:"combinations"`
}

// GetEvaluationRequest selects a recorded evaluation by id.
type GetEvaluationRequest struct {
	Id int64 `json:"id"`
}

// GetEvaluationReply is a recorded evaluation.
type GetEvaluationReply struct {
	Id           int64          `json:"id"`
	Line         []int64        `json:"line"`
	Combinations []*Combination `json:"combinations"`
	CreatedAt    int64          `json:"created_at"` // unix ms
}

// ListHitsRequest has no parameters.
type ListHitsRequest struct{}

// Hit 符号中奖次数
type Hit struct {
	Symbol int64 `json:"symbol"`
	Count  int64 `json:"count"`
}

// ListHitsReply lists hit counters ordered by symbol.
type ListHitsReply struct {
	Hits []*Hit `json:"hits"`
}
