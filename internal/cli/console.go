package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mcoot/shopsim/internal/model"
	"github.com/mcoot/shopsim/internal/services/catalog"
	"github.com/mcoot/shopsim/internal/services/shop"
)

// console renders shop session operations for a human. Operations that need
// a login report it as a message rather than failing.
type console struct {
	session  *shop.Session
	catalog  *catalog.Service
	prompter *Prompter
	out      *Output
}

func newConsole(session *shop.Session, catalog *catalog.Service, prompter *Prompter, out *Output) *console {
	return &console{
		session:  session,
		catalog:  catalog,
		prompter: prompter,
		out:      out,
	}
}

// login prompts for whichever of username and password is empty
func (c *console) login(ctx context.Context, username, password string) error {
	var err error
	if username == "" {
		if username, err = c.prompter.Line("Username: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = c.prompter.Password("Password: "); err != nil {
			return err
		}
	}

	account, err := c.session.Login(ctx, username, password)
	if err != nil {
		return err
	}
	c.out.PrintMessage(fmt.Sprintf("User %s logged in.", account.Username()))
	return nil
}

func (c *console) showCart() error {
	summary, err := c.session.Summary()
	if err != nil {
		return c.guard(err, "view the cart")
	}
	c.out.Print(summary)
	return nil
}

func (c *console) addRandom(ctx context.Context) error {
	product, err := c.session.AddRandomProduct(ctx)
	if err != nil {
		return c.guard(err, "add products to the cart")
	}
	c.out.PrintMessage(fmt.Sprintf("Added %s %s to the cart.", product.Brand(), product.Name()))
	return nil
}

func (c *console) add(ctx context.Context, id model.ProductID, quantity int) error {
	product, err := c.session.AddProduct(ctx, id, quantity)
	if err != nil {
		return c.guard(err, "add products to the cart")
	}
	c.out.PrintMessage(fmt.Sprintf("Added %d x %s %s to the cart.", quantity, product.Brand(), product.Name()))
	return nil
}

func (c *console) remove(ctx context.Context, id model.ProductID, quantity int) error {
	product, err := c.session.RemoveProduct(ctx, id, quantity)
	if err != nil {
		return c.guard(err, "remove products from the cart")
	}
	c.out.PrintMessage(fmt.Sprintf("Removed up to %d x %s %s from the cart.", quantity, product.Brand(), product.Name()))
	return nil
}

func (c *console) listCatalog(ctx context.Context) error {
	products, err := c.catalog.List(ctx)
	if err != nil {
		return err
	}
	c.out.Print(products)
	return nil
}

func (c *console) whoami() {
	info := WhoAmI{
		SessionID: c.session.ID(),
		State:     string(c.session.State()),
	}
	if account, err := c.session.Account(); err == nil {
		info.AccountID = int64(account.ID())
		info.Username = account.Username()
		info.LoggedInAt = c.session.LoggedInAt().Format(time.RFC3339)
	}
	c.out.Print(info)
}

// guard turns ErrNotAuthenticated into a message; other errors pass through
func (c *console) guard(err error, action string) error {
	if errors.Is(err, model.ErrNotAuthenticated) {
		c.out.PrintMessage(fmt.Sprintf("You must log in to %s.", action))
		return nil
	}
	return err
}
