package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"khqr-payment-gateway/config"
	"khqr-payment-gateway/internal/adapter/bakong"
	"khqr-payment-gateway/internal/adapter/qrimage"
	"khqr-payment-gateway/internal/core/domain"
	"khqr-payment-gateway/internal/service"
	"khqr-payment-gateway/pkg/logger"

	"github.com/spf13/cobra"
)

var Version = "dev"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:     "khqr",
		Short:   "khqr - Bakong KHQR payment-request tool",
		Version: Version,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(statusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildService wires the QR service the same way the server does, minus
// the optional Redis cache: one CLI invocation has nothing to cache.
func buildService() (*service.QRServiceImpl, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New("error", false)

	encoder := bakong.NewExecEncoder(cfg.Provider.EncoderCommand)
	client := bakong.NewClient(
		cfg.Provider.BaseURL,
		cfg.Merchant.Token,
		bakong.SourceInfo{
			AppIconURL:          cfg.Merchant.AppIconURL,
			AppName:             cfg.Merchant.AppName,
			AppDeepLinkCallback: cfg.Merchant.CallbackURL,
		},
		&http.Client{Timeout: cfg.Provider.Timeout},
	)
	provider := bakong.NewProvider(encoder, client)

	return service.NewQRService(
		domain.MerchantConfig{
			Token:         cfg.Merchant.Token,
			BankAccount:   cfg.Merchant.BankAccount,
			MerchantName:  cfg.Merchant.Name,
			MerchantCity:  cfg.Merchant.City,
			PhoneNumber:   cfg.Merchant.PhoneNumber,
			TerminalLabel: cfg.Merchant.TerminalLabel,
			StoreLabel:    cfg.Merchant.StoreLabel,
			CallbackURL:   cfg.Merchant.CallbackURL,
			AppIconURL:    cfg.Merchant.AppIconURL,
			AppName:       cfg.Merchant.AppName,
		},
		domain.Currency(cfg.Merchant.DefaultCurrency),
		provider,
		qrimage.NewRenderer(),
		nil,
		log,
	), nil
}

// printJSON writes one JSON object to stdout, the CLI's whole contract.
func printJSON(v interface{}) {
	out, _ := json.Marshal(v)
	fmt.Println(string(out))
}

// fail prints the failure envelope and exits non-zero, mirroring the
// one-JSON-object-per-invocation contract.
func fail(message string) {
	printJSON(map[string]interface{}{
		"success": false,
		"message": message,
	})
	os.Exit(1)
}
