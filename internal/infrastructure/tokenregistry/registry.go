package tokenregistry

import (
	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
	"solana_advisor/internal/pkg/utils"
)

// builtinTokens covers the mints the advisor most often sees in wallets.
// A tokens file can extend or override the list at startup.
var builtinTokens = []entity.TokenInfo{
	{Mint: "So11111111111111111111111111111111111111112", Symbol: "SOL", Name: "Wrapped SOL"},
	{Mint: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", Symbol: "USDC", Name: "USD Coin"},
	{Mint: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", Symbol: "USDT", Name: "Tether USD"},
	{Mint: "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", Symbol: "BONK", Name: "Bonk"},
	{Mint: "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R", Symbol: "RAY", Name: "Raydium"},
	{Mint: "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN", Symbol: "JUP", Name: "Jupiter"},
	{Mint: "orcaEKTdK7LKz57vaAYr9QeNsVEPfiu6QeMU1kektZE", Symbol: "ORCA", Name: "Orca"},
	{Mint: "MangoCzJ36AjZyKwVj3VnYU4GOnOGMVzVhR7c3SBF9Qi", Symbol: "MNGO", Name: "Mango"},
}

// TokenFileRegistry implements the port.TokenRegistry interface.
type TokenFileRegistry struct {
	byMint     map[string]entity.TokenInfo
	loggerInfo func(msg string, args ...any)
	loggerWarn func(msg string, args ...any)
}

// NewTokenRegistry creates a registry seeded with the builtin token list and,
// when tokensFile is set, merged with entries loaded from that JSON file.
// A broken tokens file is logged and skipped, never fatal.
func NewTokenRegistry(tokensFile string, loggerInfo, loggerWarn func(msg string, args ...any)) port.TokenRegistry {
	byMint := make(map[string]entity.TokenInfo, len(builtinTokens))
	for _, token := range builtinTokens {
		byMint[token.Mint] = token
	}

	if tokensFile != "" {
		tokens, err := utils.LoadTokensFromJSON(tokensFile)
		if err != nil {
			if loggerWarn != nil {
				loggerWarn("Failed to load tokens file, using builtin list only", "path", tokensFile, "error", err)
			}
		} else {
			loaded := 0
			for _, token := range tokens {
				if token.Mint == "" || token.Symbol == "" {
					if loggerWarn != nil {
						loggerWarn("Skipping token entry without mint or symbol", "path", tokensFile)
					}
					continue
				}
				byMint[token.Mint] = token
				loaded++
			}
			if loggerInfo != nil {
				loggerInfo("Token registry extended from file", "path", tokensFile, "count", loaded)
			}
		}
	}

	return &TokenFileRegistry{
		byMint:     byMint,
		loggerInfo: loggerInfo,
		loggerWarn: loggerWarn,
	}
}

// Resolve maps a mint address to its symbol and display name. Unknown mints
// get a truncated form of the address as their symbol so reports stay
// readable without pretending to know the token.
func (r *TokenFileRegistry) Resolve(mint string) (string, string) {
	if token, ok := r.byMint[mint]; ok {
		return token.Symbol, token.Name
	}
	if len(mint) <= 8 {
		return mint, ""
	}
	return mint[:8] + "...", ""
}
