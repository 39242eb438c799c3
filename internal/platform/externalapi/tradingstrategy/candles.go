package tradingstrategy

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dexdata_backend/internal/feature/candles/domain/entity"
	"dexdata_backend/internal/platform/externalapi/tradingstrategy/dto"
)

const (
	// DefaultTimeBucket はローソク足クエリのデフォルト集計間隔です。
	DefaultTimeBucket = "15m"
	// DefaultMaxBytes は上流サービスに伝えるレスポンスサイズ上限のデフォルト値です。
	// 上限の強制はサーバー側で行われ、クライアントはローカルで検査しません。
	DefaultMaxBytes = 250_000_000

	// 1行あたりのスキャナバッファ上限。candles-jsonlの1レコードは短いため十分です。
	maxLineBytes = 1 << 20
)

// GetOHLCVCandles は指定されたペアのOHLCVローソク足を取得し、ペアIDごとの
// 時系列にグループ化して返します。
//
// レスポンスボディは全体をバッファせず、1行ずつストリームとして処理します。
// 各行は独立したJSONオブジェクト（line-delimited JSON）で、pレコードの
// 登場順にグループが作られます。startTimeとendTimeは解釈せずそのまま
// クエリに転送します。pairIDsの重複は除去せずそのまま渡されます。
//
// 途中の行が不正な場合は呼び出し全体が失敗します。部分的な結果は返しません。
func (t *TradingStrategyMarket) GetOHLCVCandles(ctx context.Context, pairIDs []string, startTime, endTime, timeBucket string, maxBytes int64) (*entity.CandleSeriesCollection, error) {
	if timeBucket == "" {
		timeBucket = DefaultTimeBucket
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	q := url.Values{}
	q.Set("pair_ids", strings.Join(pairIDs, ","))
	q.Set("time_bucket", timeBucket)
	q.Set("start", startTime)
	q.Set("end", endTime)
	q.Set("max_bytes", strconv.FormatInt(maxBytes, 10))

	res, err := t.get(ctx, opCandles, "candles-jsonl", q)
	if err != nil {
		return nil, err
	}
	defer closeBody(res, opCandles)

	out := entity.NewCandleSeriesCollection()

	sc := bufio.NewScanner(res.Body)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}

		var rec dto.CandleLine
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &ParseError{Op: opCandles, Line: line, Err: err}
		}
		if f := rec.MissingField(); f != "" {
			return nil, &SchemaError{Op: opCandles, Line: line, Field: f}
		}

		out.Append(entity.Candle{
			PairID: *rec.PairID,
			Bucket: timeBucket,
			Time:   time.Unix(*rec.Timestamp, 0).UTC(),
			Open:   *rec.Open,
			High:   *rec.High,
			Low:    *rec.Low,
			Close:  *rec.Close,
			Volume: *rec.Volume,
		})
	}
	// スキャン中の読み取りエラーは転送レイヤーの失敗として扱います。
	if err := sc.Err(); err != nil {
		return nil, &TransportError{Op: opCandles, Err: err}
	}

	return out, nil
}
