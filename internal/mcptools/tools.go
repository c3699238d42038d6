package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/berkayoztunc/suiport/internal/interfaces"
)

// Register adds the portfolio tools to an MCP server. Results are returned
// as JSON text so model clients can parse them.
func Register(s *server.MCPServer, portfolio interfaces.PortfolioService, prices interfaces.PriceService) {
	walletTool := mcp.NewTool("get_wallet_balance",
		mcp.WithDescription("Scan a Sui wallet and return every token it holds with USD valuations"),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("Sui wallet address (0x-prefixed hex)"),
		),
	)
	s.AddTool(walletTool, walletHandler(portfolio))

	priceTool := mcp.NewTool("get_token_price",
		mcp.WithDescription("Resolve the current USD price of a Sui coin type"),
		mcp.WithString("coin_type",
			mcp.Required(),
			mcp.Description("Fully qualified coin type (0x..::module::NAME)"),
		),
	)
	s.AddTool(priceTool, priceHandler(prices))
}

func walletHandler(portfolio interfaces.PortfolioService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		address, ok := req.Params.Arguments["address"].(string)
		if !ok || address == "" {
			return mcp.NewToolResultError("address is required"), nil
		}

		wallet, err := portfolio.Scan(ctx, address, false)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to scan wallet: %v", err)), nil
		}

		body, err := json.Marshal(wallet)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode wallet: %v", err)), nil
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}

func priceHandler(prices interfaces.PriceService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		coinType, ok := req.Params.Arguments["coin_type"].(string)
		if !ok || coinType == "" {
			return mcp.NewToolResultError("coin_type is required"), nil
		}

		resolved, err := prices.Resolve(ctx, coinType)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to resolve price: %v", err)), nil
		}

		body, err := json.Marshal(map[string]interface{}{
			"coinType":  coinType,
			"price":     resolved.Price,
			"source":    string(resolved.Source),
			"fetchedAt": resolved.FetchedAt,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode price: %v", err)), nil
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}
