package main

import (
	"context"
	"encoding/json"
	"errors"

	"khqr-payment-gateway/internal/adapter/qrimage"
	"khqr-payment-gateway/internal/core/ports"
	"khqr-payment-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// generateInput is the JSON argument accepted by `khqr generate`.
type generateInput struct {
	Amount     *decimal.Decimal `json:"amount"`
	Currency   string           `json:"currency"`
	BillNumber string           `json:"billNumber"`
}

func generateCmd() *cobra.Command {
	var withDeepLink bool
	var withImage bool

	cmd := &cobra.Command{
		Use:   "generate <json>",
		Short: "Generate a KHQR payment request",
		Long: `Generate a KHQR payload, its MD5 fingerprint and optionally a deep link.

Example:
  khqr generate '{"amount": 10, "currency": "USD", "billNumber": "ORDER001"}'`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var input generateInput
			if err := json.Unmarshal([]byte(args[0]), &input); err != nil {
				fail("Invalid JSON data: " + err.Error())
			}

			svc, err := buildService()
			if err != nil {
				fail(errMessage(err))
			}

			result, err := svc.Generate(context.Background(), ports.GenerateRequest{
				Amount:       input.Amount,
				Currency:     input.Currency,
				BillNumber:   input.BillNumber,
				WithDeepLink: withDeepLink,
				WithImage:    withImage,
			})
			if err != nil {
				fail(errMessage(err))
			}

			out := map[string]interface{}{
				"success":     true,
				"qr":          result.Payload,
				"md5":         result.Fingerprint,
				"bill_number": result.BillNumber,
			}
			if result.DeepLink != nil {
				out["deeplink"] = *result.DeepLink
			}
			if result.ImagePNG != nil {
				out["qr_image"] = qrimage.ToBase64(result.ImagePNG)
			}
			printJSON(out)
		},
	}

	cmd.Flags().BoolVar(&withDeepLink, "deeplink", false, "also generate a payment-app deep link")
	cmd.Flags().BoolVar(&withImage, "image", false, "include a base64 PNG rendering of the QR")
	return cmd
}

// errMessage unwraps AppError messages so CLI output matches the HTTP
// envelope text.
func errMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
