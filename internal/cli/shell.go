package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/shopsim/internal/model"
)

const shellHelp = `Available commands:
  help                 show this help
  login [username]     log in as a new account (replaces the current one)
  catalog              list catalog products
  add [id] [qty]       add qty (default 1) of a product; a random one if no id
  remove <id> [qty]    remove up to qty (default 1) of a product
  cart                 show the cart
  whoami               show the active account
  exit | quit          leave the shell`

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive shop session",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := app.Catalog.Load(ctx, cfg.CatalogSize); err != nil {
				return err
			}

			out := newCmdOutput(cmd)
			prompter := newCmdPrompter(cmd, out)
			c := newConsole(app.NewSession(), app.Catalog, prompter, out)
			return runShell(ctx, c, prompter)
		}),
	}
}

// runShell reads commands until EOF or exit. Command failures are reported
// and the loop continues; only input errors end it with an error.
func runShell(ctx context.Context, c *console, prompter *Prompter) error {
	for {
		line, err := prompter.Line("shop> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if parts[0] == "exit" || parts[0] == "quit" {
			c.out.PrintMessage("Bye!")
			return nil
		}

		if err := dispatch(ctx, c, parts[0], parts[1:]); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			c.out.PrintError(err)
		}
	}
}

func dispatch(ctx context.Context, c *console, name string, args []string) error {
	switch name {
	case "help":
		c.out.PrintMessage(shellHelp)
		return nil

	case "login":
		username := ""
		if len(args) > 0 {
			username = args[0]
		}
		return c.login(ctx, username, "")

	case "catalog":
		return c.listCatalog(ctx)

	case "add":
		if len(args) == 0 {
			return c.addRandom(ctx)
		}
		id, qty, err := parseItemArgs(args)
		if err != nil {
			return err
		}
		return c.add(ctx, id, qty)

	case "remove":
		if len(args) == 0 {
			return fmt.Errorf("%w: usage: remove <id> [qty]", model.ErrInvalidArgument)
		}
		id, qty, err := parseItemArgs(args)
		if err != nil {
			return err
		}
		return c.remove(ctx, id, qty)

	case "cart":
		return c.showCart()

	case "whoami":
		c.whoami()
		return nil

	default:
		return fmt.Errorf("unknown command %q (try help)", name)
	}
}

// parseItemArgs parses "<id> [qty]"
func parseItemArgs(args []string) (model.ProductID, int, error) {
	if len(args) > 2 {
		return 0, 0, fmt.Errorf("%w: expected <id> [qty]", model.ErrInvalidArgument)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid product id %q", model.ErrInvalidArgument, args[0])
	}

	qty := 1
	if len(args) == 2 {
		qty, err = strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: invalid quantity %q", model.ErrInvalidArgument, args[1])
		}
	}
	return model.ProductID(id), qty, nil
}
