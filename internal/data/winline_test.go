package data

import (
	"context"
	"testing"
	"time"

	"winline/encoding"
	"winline/internal/biz"
	"winline/internal/conf"
	"winline/internal/winline"

	"github.com/stretchr/testify/require"
	"github.com/yola1107/kratos/v2/library/mq/rabbitmq"
	"github.com/yola1107/kratos/v2/log"
)

type capturePublisher struct {
	bodies [][]byte
}

func (p *capturePublisher) Publish(body []byte) error {
	p.bodies = append(p.bodies, body)
	return nil
}

func TestRecordKeepsEmptyCombinations(t *testing.T) {
	e := &biz.Evaluation{Line: []int64{1, 6, 6, 7, 2, 3}, CreatedAt: time.Now()}
	rec, err := toRecord(e)
	require.NoError(t, err)
	require.Equal(t, "[1,6,6,7,2,3]", rec.Line)
	require.Equal(t, "[]", rec.Combinations)
	require.Zero(t, rec.Wins)

	rec.Id = 7
	got, err := fromRecord(rec)
	require.NoError(t, err)
	require.Equal(t, int64(7), got.ID)
	require.Equal(t, e.Line, got.Line)
	require.Nil(t, got.Combinations)
}

func TestRecordWinningLine(t *testing.T) {
	line := []int64{3, 3, 3, 8, 8, 8}
	e := &biz.Evaluation{Line: line, Combinations: winline.Detect(line)}
	rec, err := toRecord(e)
	require.NoError(t, err)
	require.Equal(t, 2, rec.Wins)

	got, err := fromRecord(rec)
	require.NoError(t, err)
	require.Equal(t, e.Combinations, got.Combinations)
}

func TestFromRecordCorrupt(t *testing.T) {
	_, err := fromRecord(&evaluationRecord{Id: 1, Line: "[1,2", Combinations: "[]"})
	require.Error(t, err)
}

func TestPublishWinEvent(t *testing.T) {
	pub := &capturePublisher{}
	repo := NewWinLineRepo(&Data{pub: pub}, log.DefaultLogger)

	line := []int64{1, 2, 6, 6, 6}
	created := time.UnixMilli(1760860800000)
	require.NoError(t, repo.Publish(context.Background(), &biz.Evaluation{
		ID:           42,
		Line:         line,
		Combinations: winline.Detect(line),
		CreatedAt:    created,
	}))
	require.Len(t, pub.bodies, 1)

	var ev winEvent
	require.NoError(t, encoding.Unmarshal(pub.bodies[0], &ev))
	require.Equal(t, int64(42), ev.Id)
	require.Equal(t, line, ev.Line)
	require.Equal(t, []winline.Combination{{Symbol: 6, Positions: []int{2, 3, 4}}}, ev.Combinations)
	require.Equal(t, created.UnixMilli(), ev.CreatedAt)
}

var _ Publisher = (*rabbitmq.Publisher)(nil)

func TestNewRabbitMQUnreachable(t *testing.T) {
	_, _, err := NewRabbitMQ(&conf.Data{Rabbitmq: &conf.Data_Rabbitmq{
		Host:     "127.0.0.1",
		Port:     "1",
		Username: "guest",
		Password: "guest",
		Vhost:    "/",
		Exchange: "winline-exchange",
	}}, log.DefaultLogger)
	require.ErrorContains(t, err, "exchange=winline-exchange")
}

func TestRecordLongLine(t *testing.T) {
	line := make([]int64, 2000)
	for i := range line {
		line[i] = int64(i % 7)
	}
	rec, err := toRecord(&biz.Evaluation{Line: line})
	require.NoError(t, err)
	require.Greater(t, len(rec.Line), 512)

	got, err := fromRecord(rec)
	require.NoError(t, err)
	require.Equal(t, line, got.Line)
}
