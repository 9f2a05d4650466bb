package reporting

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

var printer = message.NewPrinter(language.Turkish)

// FormatAmount renders a base-currency amount the way the studio reads it: "₺60.000".
// Display only; kuruş are rounded away.
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + "₺" + printer.Sprintf("%d", rounded.IntPart())
}

// Digest renders a dashboard as a chat message.
func Digest(title string, dashboard *models.Dashboard) string {
	var b strings.Builder
	stats := dashboard.Stats
	totals := dashboard.Totals

	fmt.Fprintf(&b, "*%s*\n", title)
	fmt.Fprintf(&b, "Aktif iş: %d (Geldi %d / Gelmedi %d)\n", stats.ActiveTotal, stats.ArrivedCount, stats.NotArrivedCount)

	counts := make([]string, 0, len(models.VideoTypes))
	for _, t := range models.VideoTypes {
		if n := stats.TypeCounts[t]; n > 0 {
			counts = append(counts, fmt.Sprintf("%s %d", t, n))
		}
	}
	if len(counts) > 0 {
		fmt.Fprintf(&b, "%s\n", strings.Join(counts, ", "))
	}

	fmt.Fprintf(&b, "Fatura bekleyen: %d\n", stats.PendingInvoiceCount)
	fmt.Fprintf(&b, "Eksik ürün: %d\n", stats.MissingProductCount)
	fmt.Fprintf(&b, "Ciro: %s\n", FormatAmount(totals.TotalInvoiceAmount))
	fmt.Fprintf(&b, "Abonelik (aylık): %s\n", FormatAmount(totals.MonthlySubscriptionCost))
	fmt.Fprintf(&b, "Net kâr: %s", FormatAmount(totals.NetProfit))
	return b.String()
}

// WeekDigest renders one week group as a chat message.
func WeekDigest(group models.WeeklyGroup) string {
	if len(group.Items) == 0 {
		return fmt.Sprintf("*%s*\nBu hafta için kayıt yok.", group.Label)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", group.Label)
	if group.Summary != "" {
		fmt.Fprintf(&b, "%s\n", group.Summary)
	}
	for _, item := range group.Items {
		fmt.Fprintf(&b, "- %s %s (%d %s) [%s]\n",
			item.Date.Format("02.01"), item.Title, item.Quantity, item.Type, item.Status)
	}
	return strings.TrimRight(b.String(), "\n")
}

// MissingDigest renders a missing-products list as a chat message.
func MissingDigest(missing models.MissingProducts) string {
	if len(missing.Items) == 0 {
		return fmt.Sprintf("*%s*\nEksik ürün yok.", missing.Label)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s* eksik ürünler\n", missing.Label)
	for _, item := range missing.Items {
		fmt.Fprintf(&b, "- %s %s\n", item.Date.Format("02.01"), item.Title)
	}
	return strings.TrimRight(b.String(), "\n")
}
