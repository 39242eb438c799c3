package tradingstrategy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	candlesusecase "dexdata_backend/internal/feature/candles/usecase"
	chainentity "dexdata_backend/internal/feature/chains/domain/entity"
	chainsusecase "dexdata_backend/internal/feature/chains/usecase"
	exchangeentity "dexdata_backend/internal/feature/exchanges/domain/entity"
	exchangesusecase "dexdata_backend/internal/feature/exchanges/usecase"
	pairentity "dexdata_backend/internal/feature/pairs/domain/entity"
	pairsusecase "dexdata_backend/internal/feature/pairs/usecase"
	"dexdata_backend/internal/platform/externalapi/tradingstrategy/dto"
)

// 各オペレーションの識別子です。エラーメッセージに埋め込まれます。
const (
	opChains    = "chains"
	opExchanges = "exchanges"
	opPairs     = "pairs"
	opCandles   = "candles-jsonl"
)

// TradingStrategyMarket はTrading Strategy外部APIからDEX市場データを取得する
// MarketRepository実装です。上流API以外の状態を一切持ちません。
type TradingStrategyMarket struct {
	cfg    Config
	client *http.Client
}

// TradingStrategyMarketが各フィーチャーのMarketRepositoryを実装していることを
// コンパイル時に検証します。
var (
	_ chainsusecase.MarketRepository    = (*TradingStrategyMarket)(nil)
	_ exchangesusecase.MarketRepository = (*TradingStrategyMarket)(nil)
	_ pairsusecase.MarketRepository     = (*TradingStrategyMarket)(nil)
	_ candlesusecase.MarketRepository   = (*TradingStrategyMarket)(nil)
)

// NewTradingStrategyMarket は指定された設定とHTTPクライアントで
// TradingStrategyMarketの新しいインスタンスを生成します。
func NewTradingStrategyMarket(cfg Config, client *http.Client) *TradingStrategyMarket {
	return &TradingStrategyMarket{cfg: cfg, client: client}
}

// get は1回のGETリクエストを発行し、2xxレスポンスを返します。
// レスポンスボディのCloseは呼び出し元の責任です。
func (t *TradingStrategyMarket) get(ctx context.Context, op, path string, q url.Values) (*http.Response, error) {
	u := fmt.Sprintf("%s/%s", strings.TrimSuffix(t.cfg.BaseURL, "/"), path)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	res, err := t.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	// エラーページを市場データとして誤って解析しないよう、
	// パース前にステータスコードを確認します。
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		closeBody(res, op)
		return nil, &TransportError{Op: op, StatusCode: res.StatusCode}
	}
	return res, nil
}

// closeBody はレスポンスボディを閉じ、失敗をログに残します。
func closeBody(res *http.Response, op string) {
	if err := res.Body.Close(); err != nil {
		slog.Warn("failed to close response body", "op", op, "error", err)
	}
}

// ListChains はTrading Strategy APIがサポートする全ブロックチェーンを取得し、
// チェーンIDをキーとするマップとして返します。
func (t *TradingStrategyMarket) ListChains(ctx context.Context) (map[int64]chainentity.Chain, error) {
	res, err := t.get(ctx, opChains, "chains", nil)
	if err != nil {
		return nil, err
	}
	defer closeBody(res, opChains)

	// JSONレスポンスをDTOにデコード
	var body []dto.ChainItem
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, &ParseError{Op: opChains, Err: err}
	}

	chains := make(map[int64]chainentity.Chain, len(body))
	for _, v := range body {
		if v.ChainID == nil {
			return nil, &SchemaError{Op: opChains, Field: "chain_id"}
		}
		chains[*v.ChainID] = chainentity.Chain{
			ID:   *v.ChainID,
			Name: v.ChainName,
			Slug: v.ChainSlug,
		}
	}
	return chains, nil
}

// ListExchanges は指定されたチェーン上の分散型取引所を取得します。
// ソートとゼロボリュームのフィルタリングはサーバー側で行われるため、
// クライアントは追加のフィルタリングを行いません。
func (t *TradingStrategyMarket) ListExchanges(ctx context.Context, chainSlug string, filterZeroVolume bool) (map[int64]exchangeentity.Exchange, error) {
	q := url.Values{}
	q.Set("chain_slug", chainSlug)
	q.Set("sort", "usd_volume_30d")
	q.Set("direction", "desc")
	q.Set("filter_zero_volume", strconv.FormatBool(filterZeroVolume))

	res, err := t.get(ctx, opExchanges, "exchanges", q)
	if err != nil {
		return nil, err
	}
	defer closeBody(res, opExchanges)

	var body dto.ExchangesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, &ParseError{Op: opExchanges, Err: err}
	}

	exchanges := make(map[int64]exchangeentity.Exchange, len(body.Exchanges))
	for _, v := range body.Exchanges {
		if v.ExchangeID == nil {
			return nil, &SchemaError{Op: opExchanges, Field: "exchange_id"}
		}
		exchanges[*v.ExchangeID] = exchangeentity.Exchange{
			ID:           *v.ExchangeID,
			Slug:         v.ExchangeSlug,
			VolumeUSD30D: v.USDVolume30D,
		}
	}
	return exchanges, nil
}

// ListPairs は取引所とチェーンで絞り込んだ取引ペアを取得します。
// sortとfilterは不透明なトークンとしてそのままサーバーに転送されます
// （filter="unfiltered"は流動性フィルタなしを意味するセンチネル値です）。
func (t *TradingStrategyMarket) ListPairs(ctx context.Context, exchangeSlugs, chainSlugs []string, pairCount int, sort, filter string) (map[int64]pairentity.Pair, error) {
	q := url.Values{}
	q.Set("exchange_slugs", strings.Join(exchangeSlugs, ","))
	q.Set("chain_slugs", strings.Join(chainSlugs, ","))
	q.Set("page", "0")
	q.Set("page_size", strconv.Itoa(pairCount))
	q.Set("sort", sort)
	q.Set("direction", "desc")
	q.Set("filter", filter)
	q.Set("eligible_only", "true")
	q.Set("format", "json")

	res, err := t.get(ctx, opPairs, "pairs", q)
	if err != nil {
		return nil, err
	}
	defer closeBody(res, opPairs)

	var body dto.PairsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, &ParseError{Op: opPairs, Err: err}
	}

	pairs := make(map[int64]pairentity.Pair, len(body.Results))
	for _, v := range body.Results {
		if v.PairID == nil {
			return nil, &SchemaError{Op: opPairs, Field: "pair_id"}
		}
		pairs[*v.PairID] = pairentity.Pair{
			ID:           *v.PairID,
			Slug:         v.PairSlug,
			ExchangeSlug: v.ExchangeSlug,
			VolumeUSD24H: v.USDVolume24H,
			TVL:          v.PairTVL,
		}
	}
	return pairs, nil
}
