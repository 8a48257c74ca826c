package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/slalombuild/capabilities/cmd/app/commands"
	"github.com/slalombuild/capabilities/internal/app"
	"github.com/slalombuild/capabilities/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "hash-password",
			Usage: "Hash a password for use in seed data files",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Plain text password to hash",
				},
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "argon2id",
					Usage:   "Hashing algorithm to use (argon2id or bcrypt)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunHashPassword(
					container.PasswordService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("password"),
					cmd.String("algorithm"),
					cmd.String("format"),
				)
			},
		},
	}
}
