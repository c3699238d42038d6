package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/berkayoztunc/suiport/internal/types"
)

func (r *Resolvers) resolveTokenPrice(p graphql.ResolveParams) (interface{}, error) {
	coinType := p.Args["coinType"].(string)

	resolved, err := r.Prices.Resolve(p.Context, coinType)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"coinType":  coinType,
		"price":     resolved.Price,
		"source":    string(resolved.Source),
		"fetchedAt": float64(resolved.FetchedAt),
	}, nil
}

func (r *Resolvers) resolveWallet(p graphql.ResolveParams) (interface{}, error) {
	address := p.Args["address"].(string)
	refresh, _ := p.Args["refresh"].(bool)

	return r.Portfolio.Scan(p.Context, address, refresh)
}

func (r *Resolvers) resolveWalletHistory(p graphql.ResolveParams) (interface{}, error) {
	address := p.Args["address"].(string)
	days, _ := p.Args["days"].(int)
	if days < 1 {
		days = 7
	}

	since := time.Now().Add(-time.Duration(days) * 24 * time.Hour).UnixMilli()
	entries, err := r.History.ListWalletHistory(p.Context, address, since)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, walletHistoryEntryMap(e))
	}
	return out, nil
}

func (r *Resolvers) resolveSuiPriceHistory(p graphql.ResolveParams) (interface{}, error) {
	hours, _ := p.Args["hours"].(int)
	if hours < 1 {
		hours = 24
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour).UnixMilli()
	entries, err := r.History.ListNativePrices(p.Context, since)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			"id":        int(e.ID),
			"priceUSD":  e.PriceUSD,
			"createdAt": float64(e.CreatedAt),
		})
	}
	return out, nil
}

func (r *Resolvers) resolveAllTokens(p graphql.ResolveParams) (interface{}, error) {
	limit, _ := p.Args["limit"].(int)
	offset, _ := p.Args["offset"].(int)
	if limit < 1 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	tokens, err := r.Tokens.List(p.Context, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, map[string]interface{}{
			"coinType":   t.CoinType,
			"priceUSD":   t.PriceUSD,
			"lastUpdate": float64(t.LastUpdate),
		})
	}
	return out, nil
}

func (r *Resolvers) resolveUpdateSuiPrice(p graphql.ResolveParams) (interface{}, error) {
	r.Jobs.SampleNativeNow(p.Context)
	return true, nil
}

func (r *Resolvers) resolveUpdateZeroPriceTokens(p graphql.ResolveParams) (interface{}, error) {
	r.Jobs.SweepNow(p.Context)
	return true, nil
}

func walletHistoryEntryMap(e types.WalletHistoryEntry) map[string]interface{} {
	m := map[string]interface{}{
		"id":            int(e.ID),
		"walletAddress": e.WalletAddress,
		"totalValueUSD": e.TotalValueUSD,
		"createdAt":     float64(e.CreatedAt),
	}
	if e.PercentageChange != nil {
		m["percentageChange"] = *e.PercentageChange
	}
	return m
}
