package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/esc4n0rx/fomi-api/models"
)

var (
	ErrProductUnavailable = errors.New("product is not available")
	ErrQuantity           = errors.New("quantity must be at least 1")
	ErrWrongStore         = errors.New("product belongs to a different store")
)

// LineKey identifies a cart line: one product plus one customization
// note. The same product with two different notes is two lines.
type LineKey struct {
	ProductID uint
	Note      string
}

// LineItem is one cart entry. UnitPrice is the effective price frozen
// at add time; it never changes even if the product is edited later.
type LineItem struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
	Note      string          `json:"note,omitempty"`
}

func (li LineItem) Key() LineKey { return LineKey{ProductID: li.ProductID, Note: li.Note} }

// Subtotal is unit price times quantity for this line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// NewLineItem builds a cart line from a product snapshot. Products
// from another store or unavailable products are rejected here so
// they can never enter a cart.
func NewLineItem(p *models.Product, storeID uint, quantity int, note string) (LineItem, error) {
	if p.StoreID != storeID {
		return LineItem{}, ErrWrongStore
	}
	if !p.Available {
		return LineItem{}, ErrProductUnavailable
	}
	if quantity < 1 {
		return LineItem{}, ErrQuantity
	}
	return LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.EffectivePrice(),
		Quantity:  quantity,
		Image:     p.Image,
		Note:      note,
	}, nil
}

// State is a cart: ordered line items plus the derived total. Total is
// never set directly; Reduce recomputes it on every transition.
type State struct {
	Items []LineItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func Empty() State {
	return State{Items: []LineItem{}, Total: decimal.Zero}
}

// Action is the closed set of cart transitions. The marker method is
// unexported so no action can be defined outside this package.
type Action interface{ isAction() }

// AddItem merges into an existing line with the same key, otherwise
// appends.
type AddItem struct{ Item LineItem }

// RemoveItem deletes every line for a product id, whatever the note.
type RemoveItem struct{ ProductID uint }

// UpdateQuantity sets the quantity of one line; zero or negative
// removes the line.
type UpdateQuantity struct {
	Key      LineKey
	Quantity int
}

// ClearCart resets to the empty state.
type ClearCart struct{}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}

// Reduce applies one action and returns the next state. The input
// state is never mutated. Removing an absent line is a no-op.
func Reduce(s State, a Action) State {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)

	switch act := a.(type) {
	case AddItem:
		merged := false
		for i := range items {
			if items[i].Key() == act.Item.Key() {
				items[i].Quantity += act.Item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, act.Item)
		}
	case RemoveItem:
		kept := items[:0]
		for _, it := range items {
			if it.ProductID != act.ProductID {
				kept = append(kept, it)
			}
		}
		items = kept
	case UpdateQuantity:
		kept := items[:0]
		for _, it := range items {
			if it.Key() == act.Key {
				if act.Quantity <= 0 {
					continue
				}
				it.Quantity = act.Quantity
			}
			kept = append(kept, it)
		}
		items = kept
	case ClearCart:
		items = items[:0]
	}

	return State{Items: items, Total: sumItems(items)}
}

func sumItems(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}
