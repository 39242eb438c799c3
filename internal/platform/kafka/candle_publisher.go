// Package kafka publishes ingested market data to Kafka topics so that
// downstream consumers (analytics, alerting) can react to fresh candles.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	kafkago "github.com/segmentio/kafka-go"

	"dexdata_backend/internal/feature/candles/domain/entity"
	"dexdata_backend/internal/feature/candles/usecase"
)

// DefaultTopic is the topic candle batches are published to when none is
// configured.
const DefaultTopic = "candles"

// CandlePublisher writes candle batches to a Kafka topic, one message per
// candle, keyed by pair ID so all candles of a pair land on one partition.
type CandlePublisher struct {
	writer *kafkago.Writer
}

var _ usecase.CandleSink = (*CandlePublisher)(nil)

// NewCandlePublisher creates a publisher for the given brokers and topic.
func NewCandlePublisher(brokers []string, topic string) *CandlePublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	w := &kafkago.Writer{
		Addr:     kafkago.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafkago.LeastBytes{},
	}
	return &CandlePublisher{writer: w}
}

// candleMessage is the wire format of one published candle.
type candleMessage struct {
	PairID int64   `json:"pair_id"`
	Bucket string  `json:"bucket"`
	Time   int64   `json:"ts"` // UNIX seconds, UTC
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"v"`
}

// PublishBatch publishes one message per candle. An empty batch is a no-op.
func (p *CandlePublisher) PublishBatch(ctx context.Context, candles []entity.Candle) error {
	if len(candles) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, 0, len(candles))
	for _, cd := range candles {
		b, err := json.Marshal(candleMessage{
			PairID: cd.PairID,
			Bucket: cd.Bucket,
			Time:   cd.Time.Unix(),
			Open:   cd.Open,
			High:   cd.High,
			Low:    cd.Low,
			Close:  cd.Close,
			Volume: cd.Volume,
		})
		if err != nil {
			return err
		}
		msgs = append(msgs, kafkago.Message{
			Key:   []byte(strconv.FormatInt(cd.PairID, 10)),
			Value: b,
		})
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

// Close flushes pending messages and releases the writer.
func (p *CandlePublisher) Close() error {
	return p.writer.Close()
}
