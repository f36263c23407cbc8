package notify

import (
	"fmt"
	"strings"

	"bakery-preorder/internal/domain/order"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var yenPrinter = message.NewPrinter(language.Japanese)

// FormatYen renders an amount with the currency symbol and thousands
// separators, e.g. ¥1,000.
func FormatYen(m order.Money) string {
	return yenPrinter.Sprintf("¥%d", m.Yen())
}

// FormatOrder renders the fixed-layout notification text relayed to the
// shop's chat. The relay forwards it verbatim, so this text is the wire
// payload. Pure and deterministic: identical requests yield byte-identical
// output.
func FormatOrder(req *order.OrderRequest) string {
	var b strings.Builder

	b.WriteString("【お取り置き予約】\n\n")
	fmt.Fprintf(&b, "お名前: %s\n", req.Customer())
	fmt.Fprintf(&b, "電話番号: %s\n", req.Phone())
	if !req.Email().IsEmpty() {
		fmt.Fprintf(&b, "メール: %s\n", req.Email())
	}

	b.WriteString("\nご注文内容:\n")
	for _, line := range req.Lines() {
		fmt.Fprintf(&b, "・%s %d個 %s\n", line.Name(), line.Quantity().Value(), FormatYen(line.Subtotal()))
	}
	fmt.Fprintf(&b, "合計: %s\n", FormatYen(req.Total()))

	fmt.Fprintf(&b, "\n受取日時: %s %s\n", req.PickupDate(), req.PickupTime())
	if !req.Note().IsEmpty() {
		fmt.Fprintf(&b, "備考: %s\n", req.Note())
	}

	b.WriteString("\n※ お客様へのご連絡をお願いします")
	return b.String()
}
