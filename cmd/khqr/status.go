package main

import (
	"context"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <md5>",
		Short: "Check the payment status behind a fingerprint",
		Long: `Poll the Bakong API for the payment behind a payload fingerprint.

Example:
  khqr status d41d8cd98f00b204e9800998ecf8427e`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			svc, err := buildService()
			if err != nil {
				fail(errMessage(err))
			}

			result, err := svc.CheckStatus(context.Background(), args[0])
			if err != nil {
				fail(errMessage(err))
			}

			printJSON(map[string]interface{}{
				"success": true,
				"status":  string(result.Status),
				"is_paid": result.IsPaid,
			})
		},
	}
}
