package shop

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/shopsim/internal/dependencies/clock"
	"github.com/mcoot/shopsim/internal/dependencies/hasher"
	"github.com/mcoot/shopsim/internal/model"
	"github.com/mcoot/shopsim/internal/services/catalog"
)

// State is the authentication state of a session
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// SummaryLine is one cart entry as shown to the user
type SummaryLine struct {
	ProductID model.ProductID `json:"product_id"`
	Brand     string          `json:"brand"`
	Name      string          `json:"name"`
	Price     float64         `json:"price"`
	Rating    float64         `json:"rating"`
	Quantity  int             `json:"quantity"`
}

// CartSummary is the active account's cart with its total
type CartSummary struct {
	Username string        `json:"username"`
	Lines    []SummaryLine `json:"lines"`
	Total    float64       `json:"total"`
}

// Session routes cart operations to the active account. At most one account
// is active; logging in again replaces it and its cart. Not safe for
// concurrent use.
type Session struct {
	id      string
	catalog *catalog.Service
	hasher  hasher.Hasher
	clock   clock.Clock
	logger  *slog.Logger

	accountIDs *model.IDAllocator
	account    *model.Account
	loggedInAt time.Time
}

// New creates an anonymous Session
func New(catalog *catalog.Service, hasher hasher.Hasher, clock clock.Clock, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	id := uuid.NewString()
	return &Session{
		id:         id,
		catalog:    catalog,
		hasher:     hasher,
		clock:      clock,
		logger:     logger.With(slog.String("session_id", id)),
		accountIDs: model.NewIDAllocator(),
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// State reports whether an account is logged in
func (s *Session) State() State {
	if s.account == nil {
		return StateAnonymous
	}
	return StateAuthenticated
}

// IsAuthenticated is shorthand for State() == StateAuthenticated
func (s *Session) IsAuthenticated() bool {
	return s.account != nil
}

// Account returns the active account
func (s *Session) Account() (*model.Account, error) {
	if s.account == nil {
		return nil, model.ErrNotAuthenticated
	}
	return s.account, nil
}

// LoggedInAt returns when the active account logged in (zero if anonymous)
func (s *Session) LoggedInAt() time.Time {
	return s.loggedInAt
}

// Login creates a new account and makes it active, discarding any previous
// account and its cart. On failure the session is left as it was.
func (s *Session) Login(ctx context.Context, username, password string) (*model.Account, error) {
	account, err := model.NewAccount(s.accountIDs, s.hasher, username, password)
	if err != nil {
		s.logger.WarnContext(ctx, "login rejected",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if s.account != nil {
		s.logger.InfoContext(ctx, "replacing active account",
			slog.Int64("previous_account_id", int64(s.account.ID())),
			slog.Int("discarded_items", s.account.Cart().Len()),
		)
	}

	s.account = account
	s.loggedInAt = s.clock.Now()

	s.logger.InfoContext(ctx, "login succeeded",
		slog.Int64("account_id", int64(account.ID())),
		slog.String("username", account.Username()),
	)
	return account, nil
}

// AddProduct puts quantity units of a catalog product into the active cart
func (s *Session) AddProduct(ctx context.Context, id model.ProductID, quantity int) (*model.Product, error) {
	account, err := s.Account()
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, s.add(ctx, account, product, quantity)
}

// AddRandomProduct puts one unit of a randomly chosen catalog product into the active cart
func (s *Session) AddRandomProduct(ctx context.Context) (*model.Product, error) {
	account, err := s.Account()
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.Random(ctx)
	if err != nil {
		return nil, err
	}
	return product, s.add(ctx, account, product, 1)
}

// RemoveProduct takes quantity units of a catalog product out of the active cart
func (s *Session) RemoveProduct(ctx context.Context, id model.ProductID, quantity int) (*model.Product, error) {
	account, err := s.Account()
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := account.Cart().RemoveItem(product, quantity); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "item removed",
		slog.Int64("account_id", int64(account.ID())),
		slog.String("product", product.String()),
		slog.Int("quantity", quantity),
		slog.Int("remaining", account.Cart().Quantity(product.ID())),
	)
	return product, nil
}

// Summary describes the active cart
func (s *Session) Summary() (*CartSummary, error) {
	account, err := s.Account()
	if err != nil {
		return nil, err
	}

	cart := account.Cart()
	lines := make([]SummaryLine, 0, cart.Len())
	for _, item := range cart.Lines() {
		lines = append(lines, SummaryLine{
			ProductID: item.Product.ID(),
			Brand:     item.Product.Brand(),
			Name:      item.Product.Name(),
			Price:     item.Product.Price(),
			Rating:    item.Product.Rating(),
			Quantity:  item.Quantity,
		})
	}

	return &CartSummary{
		Username: account.Username(),
		Lines:    lines,
		Total:    cart.Total(),
	}, nil
}

func (s *Session) add(ctx context.Context, account *model.Account, product *model.Product, quantity int) error {
	if err := account.Cart().AddItem(product, quantity); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "item added",
		slog.Int64("account_id", int64(account.ID())),
		slog.String("product", product.String()),
		slog.Int("quantity", quantity),
		slog.Int("in_cart", account.Cart().Quantity(product.ID())),
	)
	return nil
}
