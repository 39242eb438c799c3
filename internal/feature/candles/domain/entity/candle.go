// Package entity defines the domain models for the candles feature.
package entity

import "time"

// Candle represents one OHLCV (Open, High, Low, Close, Volume) observation
// for a trading pair over a single time bucket.
type Candle struct {
	PairID int64     // Upstream-assigned trading pair ID
	Bucket string    // Aggregation interval of the candle (e.g., "15m", "1h", "1d")
	Time   time.Time // Timestamp for the start of this candle period (UTC)
	Open   float64   // Opening price
	High   float64   // Highest price during this period
	Low    float64   // Lowest price during this period
	Close  float64   // Closing price
	Volume float64   // Traded volume in USD
}

// CandleSeries holds the candles of one pair in the order they were received
// from the source, oldest first. The series is never re-sorted locally.
type CandleSeries []Candle

// CandleSeriesCollection groups candle series by pair ID. PairIDs preserves
// the order in which each pair was first seen, since map iteration order is
// not stable.
type CandleSeriesCollection struct {
	PairIDs []int64
	Series  map[int64]CandleSeries
}

// NewCandleSeriesCollection returns an empty collection ready for appends.
func NewCandleSeriesCollection() *CandleSeriesCollection {
	return &CandleSeriesCollection{Series: make(map[int64]CandleSeries)}
}

// Append adds one candle to the series of its pair, creating the series when
// the pair is seen for the first time.
func (c *CandleSeriesCollection) Append(cd Candle) {
	if _, ok := c.Series[cd.PairID]; !ok {
		c.PairIDs = append(c.PairIDs, cd.PairID)
	}
	c.Series[cd.PairID] = append(c.Series[cd.PairID], cd)
}

// Len returns the number of distinct pairs in the collection.
func (c *CandleSeriesCollection) Len() int {
	return len(c.Series)
}

// Total returns the number of candles across all series.
func (c *CandleSeriesCollection) Total() int {
	n := 0
	for _, s := range c.Series {
		n += len(s)
	}
	return n
}
