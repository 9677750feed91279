package data

import (
	"fmt"

	"winline/internal/conf"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	kredis "github.com/yola1107/kratos/v2/library/db/redis"
	kxorm "github.com/yola1107/kratos/v2/library/db/xorm"
	"github.com/yola1107/kratos/v2/library/mq/rabbitmq"
	"github.com/yola1107/kratos/v2/log"
	"xorm.io/xorm"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData, NewRedis, NewMysql, NewRabbitMQ, NewWinLineRepo,
	wire.Bind(new(Publisher), new(*rabbitmq.Publisher)),
)

// Data .
type Data struct {
	db  *xorm.Engine
	rdb redis.UniversalClient
	pub Publisher
}

// NewData .
func NewData(c *conf.Data, logger log.Logger, db *xorm.Engine, rdb redis.UniversalClient, pub Publisher) (*Data, func(), error) {
	if err := db.Sync(new(evaluationRecord)); err != nil {
		return nil, nil, fmt.Errorf("sync %s: %w", evaluationRecord{}.TableName(), err)
	}
	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
		if err := rdb.Close(); err != nil {
			log.NewHelper(logger).Errorf("close redis: %v", err)
		}
	}
	return &Data{
		db:  db,
		rdb: rdb,
		pub: pub,
	}, cleanup, nil
}

func NewRedis(c *conf.Data, logger log.Logger) redis.UniversalClient {
	return kredis.NewClient(kredis.WithAddress(c.Redis.Addr))
}

func NewMysql(c *conf.Data, logger log.Logger) (*xorm.Engine, func(), error) {
	engine, err := kxorm.NewEngine(
		kxorm.WithDriver(c.Database.Driver),
		kxorm.WithDataSource(c.Database.Source),
	)
	if err != nil {
		return nil, nil, err
	}
	return engine, func() { engine.Close() }, nil
}

// Publisher sends win events to the payout consumer.
type Publisher interface {
	Publish(body []byte) error
}

func NewRabbitMQ(c *conf.Data, logger log.Logger) (*rabbitmq.Publisher, func(), error) {
	rc := c.Rabbitmq
	pub, err := rabbitmq.NewPublisher(rabbitmq.Options{
		Host:     rc.Host,
		Port:     rc.Port,
		Username: rc.Username,
		Password: rc.Password,
		VHost:    rc.Vhost,
	}, rabbitmq.PublisherOptions{
		Exchange:     rc.Exchange,
		ExchangeType: "direct",
		RoutingKey:   rc.RoutingKey,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq publisher %s:%s exchange=%s: %w", rc.Host, rc.Port, rc.Exchange, err)
	}
	return pub, pub.Close, nil
}
