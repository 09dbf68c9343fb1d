package printing

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/samverms/Kadouri-sub002/internal/domain/documents"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/*.html
var templateFS embed.FS

// roleTheme holds the role-specific presentation of a confirmation document.
// Both roles share one template; only these values and the party block order
// differ between the seller and buyer renditions.
type roleTheme struct {
	// Title is the document heading, e.g. "SELLER ORDER CONFIRMATION"
	Title string
	// AccentStart and AccentEnd are the header gradient stops
	AccentStart string
	AccentEnd   string
	// Accent is the color used for section titles and the total row
	Accent string
	// BadgeBackground is the background for status badges
	BadgeBackground string
}

var roleThemes = map[documents.Role]roleTheme{
	documents.RoleSeller: {
		Title:           "SELLER ORDER CONFIRMATION",
		AccentStart:     "#1e40af",
		AccentEnd:       "#3b82f6",
		Accent:          "#1e40af",
		BadgeBackground: "#dbeafe",
	},
	documents.RoleBuyer: {
		Title:           "BUYER ORDER CONFIRMATION",
		AccentStart:     "#059669",
		AccentEnd:       "#10b981",
		Accent:          "#059669",
		BadgeBackground: "#d1fae5",
	},
}

// partyBlockView is one party section, in render order (viewer first)
type partyBlockView struct {
	Title   string
	Code    string
	Name    string
	Address string
	Contact string
}

// productView carries the pre-formatted product line
type productView struct {
	Name      string
	Variety   string
	Grade     string
	Code      string
	Quantity  string
	UnitPrice string
	Total     string
}

// confirmationView is the data bound to the confirmation template
type confirmationView struct {
	Theme       roleTheme
	TabTitle    string
	OrderNumber string
	OrderDate   string
	Agent       string
	Parties     []partyBlockView
	Product     productView
	Notes       string
	GeneratedAt string
}

// ConfirmationTemplate renders the order confirmation HTML for either
// document role from a single parameterized template. All interpolated
// fields pass through html/template's contextual escaping, so free-text
// values (notes, addresses, names) cannot inject markup.
type ConfirmationTemplate struct {
	tmpl *template.Template
	now  func() time.Time
}

// ConfirmationTemplateOption configures the template
type ConfirmationTemplateOption func(*ConfirmationTemplate)

// WithClock overrides the wall clock used for the footer timestamp
func WithClock(now func() time.Time) ConfirmationTemplateOption {
	return func(t *ConfirmationTemplate) {
		t.now = now
	}
}

// NewConfirmationTemplate parses the embedded confirmation template
func NewConfirmationTemplate(opts ...ConfirmationTemplateOption) (*ConfirmationTemplate, error) {
	funcMap := template.FuncMap{
		// safeCSS marks theme colors as safe CSS. The values are fixed
		// constants above, never user input.
		"safeCSS": func(s string) template.CSS { return template.CSS(s) },
	}

	tmpl, err := template.New("order_confirmation.html").Funcs(funcMap).ParseFS(templateFS, "templates/order_confirmation.html")
	if err != nil {
		return nil, NewRenderError(ErrCodeInvalidHTML, "failed to parse confirmation template", err)
	}

	t := &ConfirmationTemplate{
		tmpl: tmpl,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Render produces the confirmation HTML for one order and role
func (t *ConfirmationTemplate) Render(order *documents.OrderConfirmation, role documents.Role) (string, error) {
	if order == nil {
		return "", NewRenderError(ErrCodeInvalidHTML, "order is nil", nil)
	}
	if !role.IsValid() {
		return "", NewRenderError(ErrCodeInvalidHTML, "invalid document role: "+string(role), nil)
	}

	view := buildConfirmationView(order, role, t.now())

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, view); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute confirmation template", err)
	}
	return buf.String(), nil
}

// Title returns the PDF metadata title for one order and role
func (t *ConfirmationTemplate) Title(order *documents.OrderConfirmation, role documents.Role) string {
	return tabTitle(order, role)
}

func buildConfirmationView(order *documents.OrderConfirmation, role documents.Role, now time.Time) *confirmationView {
	viewer := partyBlock(order.Party(role), role, true)
	counterparty := partyBlock(order.Party(role.Counterpart()), role.Counterpart(), false)

	return &confirmationView{
		Theme:       roleThemes[role],
		TabTitle:    tabTitle(order, role),
		OrderNumber: order.OrderNumber,
		OrderDate:   formatShortDate(order.OrderDate),
		Agent:       order.Agent.Name + " (" + order.Agent.Code + ")",
		Parties:     []partyBlockView{viewer, counterparty},
		Product: productView{
			Name:      order.Product.Name,
			Variety:   order.Product.Variety,
			Grade:     order.Product.Grade,
			Code:      order.Product.Code,
			Quantity:  formatGrouped(order.Quantity) + " " + order.Unit,
			UnitPrice: "$" + formatUnitPrice(order.UnitPrice) + "/" + order.Unit,
			Total:     "$" + formatGrouped(order.Total),
		},
		Notes:       order.Notes,
		GeneratedAt: formatDateTime(now),
	}
}

func partyBlock(p documents.Party, role documents.Role, viewer bool) partyBlockView {
	title := "Buyer Information"
	if role == documents.RoleSeller {
		title = "Seller Information"
	}
	if viewer {
		title += " (You)"
	}
	return partyBlockView{
		Title:   title,
		Code:    p.Code,
		Name:    p.Name,
		Address: p.Address,
		Contact: p.Contact,
	}
}

func tabTitle(order *documents.OrderConfirmation, role documents.Role) string {
	if role == documents.RoleSeller {
		return "Seller Order - " + order.OrderNumber
	}
	return "Buyer Order - " + order.OrderNumber
}

var enUS = message.NewPrinter(language.AmericanEnglish)

// formatGrouped renders an amount with grouped thousands and the locale's
// default fraction digits. Quantities and order totals both use this; unit
// prices do not. The asymmetry with formatUnitPrice is deliberate and
// matches the documents this replaces.
func formatGrouped(d decimal.Decimal) string {
	f, _ := d.Float64()
	return enUS.Sprintf("%v", number.Decimal(f))
}

// formatUnitPrice renders a unit price with exactly two decimal places and
// no grouping.
func formatUnitPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatShortDate renders a calendar date in short en-US form, e.g. "3/1/2025"
func formatShortDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// formatDateTime renders a timestamp in en-US form, e.g. "3/1/2025, 2:05:07 PM"
func formatDateTime(t time.Time) string {
	return t.Format("1/2/2006, 3:04:05 PM")
}
