// Command rabbitmq tails the win events published by the winline server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"winline/encoding"
	"winline/internal/winline"

	"github.com/yola1107/kratos/v2/library/mq/rabbitmq"
	"github.com/yola1107/kratos/v2/log"
)

var (
	opts  = rabbitmq.DefaultOptions()
	copts = rabbitmq.ConsumerOptions{ExchangeType: "direct"}
)

func init() {
	flag.StringVar(&opts.Host, "host", opts.Host, "rabbitmq host")
	flag.StringVar(&opts.Port, "port", opts.Port, "rabbitmq port")
	flag.StringVar(&opts.Username, "user", opts.Username, "rabbitmq user")
	flag.StringVar(&opts.Password, "password", opts.Password, "rabbitmq password")
	flag.StringVar(&opts.VHost, "vhost", opts.VHost, "rabbitmq vhost")
	flag.StringVar(&copts.Exchange, "exchange", "winline-exchange", "exchange the server publishes to")
	flag.StringVar(&copts.RoutingKey, "key", "winline-win", "routing key")
	flag.StringVar(&copts.Queue, "queue", "winline-debug", "queue bound by this consumer")
}

type winEvent struct {
	Id           int64                 `json:"id"`
	Line         []int64               `json:"line"`
	Combinations []winline.Combination `json:"combinations"`
	CreatedAt    int64                 `json:"created_at"`
}

// handleWinEvent 解析失败的消息直接丢弃，返回错误会被重新入队
func handleWinEvent(body []byte) error {
	var ev winEvent
	if err := encoding.Unmarshal(body, &ev); err != nil {
		log.Errorf("[消费者] 无法解析: %s err=%v", string(body), err)
		return nil
	}
	log.Infof("[消费者] id=%d line=%v combinations=%s", ev.Id, ev.Line, encoding.ToJson(ev.Combinations))
	return nil
}

func main() {
	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := rabbitmq.NewConsumer(opts, copts, handleWinEvent)
	c.Start()
	log.Infof("[消费者] 已启动 queue=%s exchange=%s key=%s", copts.Queue, copts.Exchange, copts.RoutingKey)

	<-ctx.Done()
	c.Close()
	log.Infof("[消费者] 已停止")
}
