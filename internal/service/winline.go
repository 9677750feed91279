package service

import (
	"context"
	"sort"

	v1 "winline/api/winline/v1"
	"winline/internal/biz"
	"winline/internal/winline"
)

// WinLineService is a winline service.
type WinLineService struct {
	uc *biz.WinLineUsecase
}

// NewWinLineService new a winline service.
func NewWinLineService(uc *biz.WinLineUsecase) *WinLineService {
	return &WinLineService{uc: uc}
}

// Detect implements v1.WinLineHTTPServer.
func (s *WinLineService) Detect(ctx context.Context, in *v1.DetectRequest) (*v1.DetectReply, error) {
	e, err := s.uc.Evaluate(ctx, in.Line)
	if err != nil {
		return nil, err
	}
	return &v1.DetectReply{Id: e.ID, Combinations: toCombinations(e.Combinations)}, nil
}

// GetEvaluation implements v1.WinLineHTTPServer.
func (s *WinLineService) GetEvaluation(ctx context.Context, in *v1.GetEvaluationRequest) (*v1.GetEvaluationReply, error) {
	e, err := s.uc.GetEvaluation(ctx, in.Id)
	if err != nil {
		return nil, err
	}
	return &v1.GetEvaluationReply{
		Id:           e.ID,
		Line:         e.Line,
		Combinations: toCombinations(e.Combinations),
		CreatedAt:    e.CreatedAt.UnixMilli(),
	}, nil
}

// ListHits implements v1.WinLineHTTPServer.
func (s *WinLineService) ListHits(ctx context.Context, _ *v1.ListHitsRequest) (*v1.ListHitsReply, error) {
	hits, err := s.uc.Hits(ctx)
	if err != nil {
		return nil, err
	}
	reply := &v1.ListHitsReply{Hits: make([]*v1.Hit, 0, len(hits))}
	for symbol, count := range hits {
		reply.Hits = append(reply.Hits, &v1.Hit{Symbol: symbol, Count: count})
	}
	sort.Slice(reply.Hits, func(i, j int) bool { return reply.Hits[i].Symbol < reply.Hits[j].Symbol })
	return reply, nil
}

// toCombinations never returns nil so replies always carry a JSON array.
func toCombinations(combos []winline.Combination) []*v1.Combination {
	out := make([]*v1.Combination, 0, len(combos))
	for _, c := range combos {
		positions := make([]int64, len(c.Positions))
		for i, p := range c.Positions {
			positions[i] = int64(p)
		}
		out = append(out, &v1.Combination{Symbol: c.Symbol, Positions: positions})
	}
	return out
}
