package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/shopsim/internal/model"
	"github.com/mcoot/shopsim/internal/services/shop"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter writing results to w and errors to errW
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// JSON reports whether results are written as JSON
func (o *Output) JSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.JSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.JSON() {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.JSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *shop.CartSummary:
		o.printCart(v)
	case []*model.Product:
		o.printProducts(v)
	case *model.Product:
		o.printProducts([]*model.Product{v})
	case WhoAmI:
		o.printWhoAmI(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// WhoAmI describes the session's active account
type WhoAmI struct {
	SessionID  string `json:"session_id"`
	State      string `json:"state"`
	AccountID  int64  `json:"account_id,omitempty"`
	Username   string `json:"username,omitempty"`
	LoggedInAt string `json:"logged_in_at,omitempty"`
}

func (o *Output) printCart(c *shop.CartSummary) {
	if len(c.Lines) == 0 {
		fmt.Fprintln(o.w, "Cart is empty.")
		return
	}
	fmt.Fprintf(o.w, "Cart of %s:\n", c.Username)
	for _, l := range c.Lines {
		fmt.Fprintf(o.w, "  %s %s - %.2f, rating %.2f (qty: %d)\n", l.Brand, l.Name, l.Price, l.Rating, l.Quantity)
	}
	fmt.Fprintf(o.w, "Total: %.2f\n", c.Total)
}

func (o *Output) printProducts(products []*model.Product) {
	if len(products) == 0 {
		fmt.Fprintln(o.w, "Catalog is empty.")
		return
	}
	fmt.Fprintf(o.w, "%4s  %-10s %-16s %12s  %s\n", "ID", "BRAND", "NAME", "PRICE", "RATING")
	for _, p := range products {
		fmt.Fprintf(o.w, "%4d  %-10s %-16s %12.2f  %.2f\n", p.ID(), p.Brand(), p.Name(), p.Price(), p.Rating())
	}
}

func (o *Output) printWhoAmI(w WhoAmI) {
	if w.Username == "" {
		fmt.Fprintf(o.w, "Not logged in (session %s)\n", w.SessionID)
		return
	}
	fmt.Fprintf(o.w, "User: %s (id %d)\n", w.Username, w.AccountID)
	fmt.Fprintf(o.w, "Logged in: %s\n", w.LoggedInAt)
	fmt.Fprintf(o.w, "Session: %s\n", w.SessionID)
}
