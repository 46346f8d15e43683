package cli

import (
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted shop walkthrough",
		Long: `Runs the scripted walkthrough: view and add to the cart while logged
out, log in, then add a random catalog product and view the cart again.

The username and password are prompted for unless given as flags.`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := app.Catalog.Load(ctx, cfg.CatalogSize); err != nil {
				return err
			}

			out := newCmdOutput(cmd)
			c := newConsole(app.NewSession(), app.Catalog, newCmdPrompter(cmd, out), out)

			if err := c.showCart(); err != nil {
				return err
			}
			if err := c.addRandom(ctx); err != nil {
				return err
			}
			if err := c.login(ctx, username, password); err != nil {
				return err
			}
			if err := c.showCart(); err != nil {
				return err
			}
			if err := c.addRandom(ctx); err != nil {
				return err
			}
			return c.showCart()
		}),
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "Username (prompted if empty)")
	cmd.Flags().StringVarP(&password, "pass", "p", "", "Password (prompted if empty)")

	return cmd
}

func newCmdOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// newCmdPrompter prompts on stdout, or on stderr when stdout carries JSON
func newCmdPrompter(cmd *cobra.Command, out *Output) *Prompter {
	if out.JSON() {
		return NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	return NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}
