package biz

import (
	"context"
	"fmt"
	"time"

	v1 "winline/api/winline/v1"
	"winline/internal/conf"
	"winline/internal/winline"

	"github.com/yola1107/kratos/v2/log"
)

var (
	// ErrEvaluationNotFound is evaluation not found.
	ErrEvaluationNotFound = v1.ErrorEvaluationNotFound("evaluation not found")
)

// Evaluation is one detect call as recorded by the service.
type Evaluation struct {
	ID           int64
	Line         []int64
	Combinations []winline.Combination
	CreatedAt    time.Time
}

// Won reports whether any combination was found.
func (e *Evaluation) Won() bool { return len(e.Combinations) > 0 }

// WinLineRepo is a Evaluation repo.
type WinLineRepo interface {
	// Save stores e and sets its ID.
	Save(context.Context, *Evaluation) error
	FindByID(context.Context, int64) (*Evaluation, error)
	IncrHits(context.Context, []winline.Combination) error
	Hits(context.Context) (map[int64]int64, error)
	Publish(context.Context, *Evaluation) error
}

// WinLineUsecase is a WinLine usecase.
type WinLineUsecase struct {
	repo          WinLineRepo
	maxLineLength int
	log           *log.Helper
}

// NewWinLineUsecase new a WinLine usecase.
func NewWinLineUsecase(c *conf.Biz, repo WinLineRepo, logger log.Logger) *WinLineUsecase {
	uc := &WinLineUsecase{repo: repo, log: log.NewHelper(logger)}
	if c != nil {
		uc.maxLineLength = c.MaxLineLength
	}
	return uc
}

// Evaluate detects the winning combinations of line and records the result.
// Once the evaluation is saved it is returned even when a later step fails;
// hit counters are only updated after the win event has been published.
func (uc *WinLineUsecase) Evaluate(ctx context.Context, line []int64) (*Evaluation, error) {
	if uc.maxLineLength > 0 && len(line) > uc.maxLineLength {
		return nil, v1.ErrorLineTooLong("line length %d exceeds %d", len(line), uc.maxLineLength)
	}

	e := &Evaluation{
		Line:         line,
		Combinations: winline.Detect(line),
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("save evaluation: %w", err)
	}
	uc.log.WithContext(ctx).Debugf("Evaluate: id=%d line=%v combinations=%v", e.ID, line, e.Combinations)

	if !e.Won() {
		return e, nil
	}
	if err := uc.repo.Publish(ctx, e); err != nil {
		uc.log.WithContext(ctx).Errorf("Publish: id=%d err=%v", e.ID, err)
		return e, fmt.Errorf("publish evaluation %d: %w", e.ID, err)
	}
	if err := uc.repo.IncrHits(ctx, e.Combinations); err != nil {
		uc.log.WithContext(ctx).Errorf("IncrHits: id=%d err=%v", e.ID, err)
		return e, fmt.Errorf("incr hits of evaluation %d: %w", e.ID, err)
	}
	return e, nil
}

// GetEvaluation returns a recorded evaluation.
func (uc *WinLineUsecase) GetEvaluation(ctx context.Context, id int64) (*Evaluation, error) {
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEvaluationNotFound
	}
	return e, nil
}

// Hits returns how many winning evaluations each symbol took part in.
func (uc *WinLineUsecase) Hits(ctx context.Context) (map[int64]int64, error) {
	return uc.repo.Hits(ctx)
}
