package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tally/internal/amqp"
	"github.com/MrJamesThe3rd/tally/internal/app"
	"github.com/MrJamesThe3rd/tally/internal/logging"
	"github.com/MrJamesThe3rd/tally/internal/worker"
)

func workerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume goal reconciliation requests from the broker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.AMQP.URL == "" {
				return errors.New("AMQP_URL is required")
			}

			client, err := amqp.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
			if err != nil {
				return fmt.Errorf("connecting to broker: %w", err)
			}
			defer client.Close()

			return withServices(cmd.Context(), func(svc *app.Services) error {
				return worker.New(svc.Savings, client, logging.Component("worker")).Run(cmd.Context())
			})
		},
	}
}
