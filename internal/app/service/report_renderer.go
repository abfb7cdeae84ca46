package service

import (
	"fmt"
	"sort"
	"strings"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
	"solana_advisor/internal/pkg/utils"
)

const defaultMaxHoldings = 15

// ReportRendererImpl implements port.ReportRenderer, producing the markdown
// text shown to the user in chat.
type ReportRendererImpl struct {
	maxHoldings int
}

// NewReportRenderer creates a renderer that shows at most maxHoldings token
// positions per report.
func NewReportRenderer(maxHoldings int) port.ReportRenderer {
	if maxHoldings <= 0 {
		maxHoldings = defaultMaxHoldings
	}
	return &ReportRendererImpl{maxHoldings: maxHoldings}
}

func (r *ReportRendererImpl) Render(analysis *entity.WalletAnalysis) string {
	if analysis == nil {
		return "No analysis available."
	}

	var b strings.Builder

	if analysis.Failed() {
		b.WriteString("## ⚠️ Analysis Failed\n\n")
		fmt.Fprintf(&b, "**Wallet:** `%s`\n\n", utils.TruncateAddress(analysis.Address))
		b.WriteString("Every balance source failed for this wallet. The address may be unused, or the upstream providers may be down right now.\n\n")
		renderRecommendations(&b, analysis.Recommendations)
		return b.String()
	}

	snapshot := analysis.Snapshot

	b.WriteString("## 📊 Wallet Statistics\n\n")
	fmt.Fprintf(&b, "**Wallet:** `%s`\n", utils.TruncateAddress(snapshot.Address))
	fmt.Fprintf(&b, "**%s Balance:** %.4f %s\n", entity.NativeSymbol, snapshot.NativeBalance, entity.NativeSymbol)
	fmt.Fprintf(&b, "**Token Holdings:** %d tokens\n", snapshot.DistinctTokenCount())
	if snapshot.PortfolioValueUSD != nil {
		fmt.Fprintf(&b, "**Portfolio Value:** %s", utils.FormatUSD(*snapshot.PortfolioValueUSD))
		if snapshot.DailyChangePercent != nil {
			fmt.Fprintf(&b, " (%s 24h)", utils.FormatSignedPercent(*snapshot.DailyChangePercent))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("**Portfolio Value:** unavailable\n")
	}
	fmt.Fprintf(&b, "**Data Source:** %s\n\n", snapshot.DataSource)

	if len(snapshot.DistributionByType) > 0 {
		b.WriteString("### 📈 Distribution by Type\n\n")
		for _, category := range sortedKeys(snapshot.DistributionByType) {
			fmt.Fprintf(&b, "- %s: %s\n", category, utils.FormatUSD(snapshot.DistributionByType[category]))
		}
		b.WriteString("\n")
	}

	r.renderHoldings(&b, snapshot.TokenHoldings)
	renderMarket(&b, analysis.Market)
	renderRecommendations(&b, analysis.Recommendations)

	return b.String()
}

func (r *ReportRendererImpl) renderHoldings(b *strings.Builder, holdings []entity.TokenHolding) {
	b.WriteString("### 🪙 Token Holdings\n\n")
	if len(holdings) == 0 {
		b.WriteString("No token holdings found or token data unavailable.\n\n")
		return
	}

	shown := holdings
	if len(shown) > r.maxHoldings {
		shown = shown[:r.maxHoldings]
	}
	for i, holding := range shown {
		fmt.Fprintf(b, "%d. **%s**", i+1, holding.Symbol)
		if holding.Verified {
			b.WriteString(" ✅")
		}
		b.WriteString("\n")
		fmt.Fprintf(b, "   - Amount: %s\n", utils.FormatQuantity(holding.Quantity))
		if holding.ValueUSD != nil {
			fmt.Fprintf(b, "   - Value: %s\n", utils.FormatUSD(*holding.ValueUSD))
		} else {
			b.WriteString("   - Value: unavailable\n")
		}
		if holding.PriceUSD != nil {
			fmt.Fprintf(b, "   - Price: %s\n", utils.FormatUSD(*holding.PriceUSD))
		}
		if holding.Change1DPercent != nil {
			fmt.Fprintf(b, "   - 24h Change: %s\n", utils.FormatSignedPercent(*holding.Change1DPercent))
		}
		fmt.Fprintf(b, "   - Mint: `%s`\n\n", utils.TruncateAddress(holding.Mint))
	}
	if hidden := len(holdings) - r.maxHoldings; hidden > 0 {
		fmt.Fprintf(b, "...and %d more holdings.\n\n", hidden)
	}
}

func renderMarket(b *strings.Builder, market entity.MarketContext) {
	b.WriteString("### 🌐 Market Context\n\n")
	fmt.Fprintf(b, "**%s Price:** %s\n", entity.NativeSymbol, utils.FormatUSD(market.NativePriceUSD))
	fmt.Fprintf(b, "**7d Change:** %s\n", utils.FormatSignedPercent(market.PriceChange7DPercent))
	fmt.Fprintf(b, "**Trend:** %s\n\n", market.Trend)
}

func renderRecommendations(b *strings.Builder, recommendations []entity.Recommendation) {
	if len(recommendations) == 0 {
		b.WriteString("No specific recommendations at this time.\n")
		return
	}

	b.WriteString("## 💡 Investment Recommendations\n\n")
	for i, rec := range recommendations {
		fmt.Fprintf(b, "### %s %d. %s\n", priorityEmoji(rec.Priority), i+1, rec.Action)
		fmt.Fprintf(b, "**Description:** %s\n", rec.Description)
		fmt.Fprintf(b, "**Reasoning:** %s\n", rec.Reasoning)
		if rec.EstimatedAnnualReturn != "" {
			fmt.Fprintf(b, "**Estimated Annual Return:** %s\n", rec.EstimatedAnnualReturn)
		}
		b.WriteString("\n")
	}
}

func priorityEmoji(priority entity.RecommendationPriority) string {
	switch priority {
	case entity.PriorityHigh:
		return "🔴"
	case entity.PriorityLow:
		return "🟢"
	default:
		return "🟡"
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
