package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/session"
)

const greeting = "Pokedex online. Type a Pokemon name, or \"exit\" to quit."

func newChatCmd(getClient func() *client) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive Pokedex session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := getClient()
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			snap, err := c.service.Create(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := c.service.Delete(ctx, snap.ID); err != nil {
					c.logger.Debug("failed to delete chat session", slog.String("error", err.Error()))
				}
			}()

			fmt.Fprintln(out, c.renderer.Panel(nil, domain.Resources{}))
			fmt.Fprintln(out, greeting)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}

				line := strings.TrimSpace(scanner.Text())
				switch strings.ToLower(line) {
				case "":
					continue
				case "exit", "quit":
					return nil
				}

				ex, err := c.service.Submit(ctx, snap.ID, line)
				if errors.Is(err, session.ErrEmptyInput) {
					continue
				}
				if err != nil {
					return err
				}

				if ex.Bot.Data != nil && ex.Bot.Data.Identified {
					fmt.Fprintln(out, c.renderer.Panel(ex.Bot.Data, c.resourcesFor(*ex.Bot.Data)))
				}
				fmt.Fprintln(out, c.renderer.Message(ex.Bot))

				if ctx.Err() != nil {
					return ctx.Err()
				}
			}
		},
	}
}
