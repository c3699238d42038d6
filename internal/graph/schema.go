package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/berkayoztunc/suiport/internal/interfaces"
)

// Resolvers bundles the services the GraphQL layer exposes.
type Resolvers struct {
	Portfolio interfaces.PortfolioService
	Prices    interfaces.PriceService
	History   interfaces.HistoryService
	Tokens    interfaces.TokenService
	Jobs      interfaces.JobService
}

var tokenMetadataType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TokenMetadata",
	Fields: graphql.Fields{
		"decimals":    &graphql.Field{Type: graphql.Int},
		"name":        &graphql.Field{Type: graphql.String},
		"symbol":      &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"iconUrl":     &graphql.Field{Type: graphql.String},
	},
})

var walletTokenType = graphql.NewObject(graphql.ObjectConfig{
	Name: "WalletToken",
	Fields: graphql.Fields{
		"coinType": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"balance":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":    &graphql.Field{Type: graphql.Float},
		"valueUSD": &graphql.Field{Type: graphql.Float},
		"metadata": &graphql.Field{Type: tokenMetadataType},
	},
})

var walletType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Wallet",
	Fields: graphql.Fields{
		"address":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"totalValueUSD": &graphql.Field{Type: graphql.Float},
		"lastUpdate":    &graphql.Field{Type: graphql.Float},
		"tokens":        &graphql.Field{Type: graphql.NewList(walletTokenType)},
	},
})

var walletHistoryEntryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "WalletHistoryEntry",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"walletAddress":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"totalValueUSD":    &graphql.Field{Type: graphql.Float},
		"percentageChange": &graphql.Field{Type: graphql.Float},
		"createdAt":        &graphql.Field{Type: graphql.Float},
	},
})

var nativePriceEntryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "NativePriceEntry",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"priceUSD":  &graphql.Field{Type: graphql.Float},
		"createdAt": &graphql.Field{Type: graphql.Float},
	},
})

var tokenPriceType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TokenPrice",
	Fields: graphql.Fields{
		"coinType":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"source":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"fetchedAt": &graphql.Field{Type: graphql.Float},
	},
})

var tokenType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Token",
	Fields: graphql.Fields{
		"coinType":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"priceUSD":   &graphql.Field{Type: graphql.Float},
		"lastUpdate": &graphql.Field{Type: graphql.Float},
	},
})

// NewSchema builds the executable schema over the given resolvers.
func NewSchema(r *Resolvers) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"tokenPrice": &graphql.Field{
				Type: tokenPriceType,
				Args: graphql.FieldConfigArgument{
					"coinType": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveTokenPrice,
			},
			"wallet": &graphql.Field{
				Type: walletType,
				Args: graphql.FieldConfigArgument{
					"address": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"refresh": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
				},
				Resolve: r.resolveWallet,
			},
			"walletHistory": &graphql.Field{
				Type: graphql.NewList(walletHistoryEntryType),
				Args: graphql.FieldConfigArgument{
					"address": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"days":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 7},
				},
				Resolve: r.resolveWalletHistory,
			},
			"suiPriceHistory": &graphql.Field{
				Type: graphql.NewList(nativePriceEntryType),
				Args: graphql.FieldConfigArgument{
					"hours": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 24},
				},
				Resolve: r.resolveSuiPriceHistory,
			},
			"allTokens": &graphql.Field{
				Type: graphql.NewList(tokenType),
				Args: graphql.FieldConfigArgument{
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 50},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: r.resolveAllTokens,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"updateSuiPrice": &graphql.Field{
				Type:    graphql.Boolean,
				Resolve: r.resolveUpdateSuiPrice,
			},
			"updateZeroPriceTokens": &graphql.Field{
				Type:    graphql.Boolean,
				Resolve: r.resolveUpdateZeroPriceTokens,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
