package data

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"winline/encoding"
	"winline/internal/biz"
	"winline/internal/winline"

	"github.com/yola1107/kratos/v2/log"
)

const (
	_hitsKey = "winline:hits" // 符号 -> 中奖次数
	_winsKey = "winline:wins" // 中奖局数
)

type evaluationRecord struct {
	Id           int64     `xorm:"pk autoincr 'id'"`
	Line         string    `xorm:"text notnull 'line'"`
	Combinations string    `xorm:"text 'combinations'"`
	Wins         int       `xorm:"notnull default 0 'wins'"`
	CreatedAt    time.Time `xorm:"'created_at'"`
}

func (evaluationRecord) TableName() string { return "winline_evaluation" }

// winEvent is the message body sent for every winning evaluation.
type winEvent struct {
	Id           int64                 `json:"id"`
	Line         []int64               `json:"line"`
	Combinations []winline.Combination `json:"combinations"`
	CreatedAt    int64                 `json:"created_at"`
}

type winLineRepo struct {
	data *Data
	log  *log.Helper
}

// NewWinLineRepo .
func NewWinLineRepo(data *Data, logger log.Logger) biz.WinLineRepo {
	return &winLineRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *winLineRepo) Save(ctx context.Context, e *biz.Evaluation) error {
	rec, err := toRecord(e)
	if err != nil {
		return err
	}
	if _, err := r.data.db.Context(ctx).Insert(rec); err != nil {
		return err
	}
	e.ID = rec.Id
	return nil
}

func (r *winLineRepo) FindByID(ctx context.Context, id int64) (*biz.Evaluation, error) {
	var rec evaluationRecord
	has, err := r.data.db.Context(ctx).ID(id).Get(&rec)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}
	return fromRecord(&rec)
}

func (r *winLineRepo) IncrHits(ctx context.Context, combos []winline.Combination) error {
	pipe := r.data.rdb.TxPipeline()
	for _, c := range combos {
		pipe.HIncrBy(ctx, _hitsKey, strconv.FormatInt(c.Symbol, 10), 1)
	}
	pipe.Incr(ctx, _winsKey)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *winLineRepo) Hits(ctx context.Context) (map[int64]int64, error) {
	m, err := r.data.rdb.HGetAll(ctx, _hitsKey).Result()
	if err != nil {
		return nil, err
	}
	hits := make(map[int64]int64, len(m))
	for k, v := range m {
		symbol, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			r.log.WithContext(ctx).Warnf("Hits: skip field %q: %v", k, err)
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("hits for symbol %d: %w", symbol, err)
		}
		hits[symbol] = n
	}
	return hits, nil
}

func (r *winLineRepo) Publish(ctx context.Context, e *biz.Evaluation) error {
	body, err := encoding.Marshal(&winEvent{
		Id:           e.ID,
		Line:         e.Line,
		Combinations: e.Combinations,
		CreatedAt:    e.CreatedAt.UnixMilli(),
	})
	if err != nil {
		return err
	}
	return r.data.pub.Publish(body)
}

func toRecord(e *biz.Evaluation) (*evaluationRecord, error) {
	line, err := encoding.Marshal(e.Line)
	if err != nil {
		return nil, err
	}
	combos := e.Combinations
	if combos == nil {
		combos = []winline.Combination{}
	}
	cs, err := encoding.Marshal(combos)
	if err != nil {
		return nil, err
	}
	return &evaluationRecord{
		Line:         string(line),
		Combinations: string(cs),
		Wins:         len(e.Combinations),
		CreatedAt:    e.CreatedAt,
	}, nil
}

func fromRecord(rec *evaluationRecord) (*biz.Evaluation, error) {
	e := &biz.Evaluation{ID: rec.Id, CreatedAt: rec.CreatedAt}
	if err := encoding.Unmarshal([]byte(rec.Line), &e.Line); err != nil {
		return nil, fmt.Errorf("decode line of evaluation %d: %w", rec.Id, err)
	}
	if err := encoding.Unmarshal([]byte(rec.Combinations), &e.Combinations); err != nil {
		return nil, fmt.Errorf("decode combinations of evaluation %d: %w", rec.Id, err)
	}
	if len(e.Combinations) == 0 {
		e.Combinations = nil
	}
	return e, nil
}
