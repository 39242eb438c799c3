package dto

// CandleLine is one line of the candles-jsonl response. The upstream uses
// short field names to keep the stream compact.
type CandleLine struct {
	PairID    *int64   `json:"p"`
	Timestamp *int64   `json:"ts"` // UNIX seconds, UTC
	Open      *float64 `json:"o"`
	High      *float64 `json:"h"`
	Low       *float64 `json:"l"`
	Close     *float64 `json:"c"`
	Volume    *float64 `json:"v"`
}

// MissingField returns the JSON key of the first required field absent from
// the line, or the empty string when the line is complete.
func (l CandleLine) MissingField() string {
	switch {
	case l.PairID == nil:
		return "p"
	case l.Timestamp == nil:
		return "ts"
	case l.Open == nil:
		return "o"
	case l.High == nil:
		return "h"
	case l.Low == nil:
		return "l"
	case l.Close == nil:
		return "c"
	case l.Volume == nil:
		return "v"
	}
	return ""
}
