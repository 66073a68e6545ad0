package bakong

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"khqr-payment-gateway/internal/core/domain"
)

// ExecEncoder produces KHQR payloads by running an external encoder
// command. The command
// receives `generate <json>` and must print a JSON object with either
// {"success":true,"qr":"..."} or {"success":false,"message":"..."}.
// The KHQR wire format stays entirely on the other side of this boundary.
type ExecEncoder struct {
	command string
	args    []string
}

// NewExecEncoder creates an encoder running the given command line. The
// command string may carry leading arguments, e.g. "python3 encoder.py".
func NewExecEncoder(command string) *ExecEncoder {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return &ExecEncoder{}
	}
	return &ExecEncoder{command: parts[0], args: parts[1:]}
}

// encoderInput mirrors the keyword arguments of the encoder command.
type encoderInput struct {
	BankAccount   string `json:"bank_account"`
	MerchantName  string `json:"merchant_name"`
	MerchantCity  string `json:"merchant_city"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	StoreLabel    string `json:"store_label"`
	BillNumber    string `json:"bill_number"`
	PhoneNumber   string `json:"phone_number"`
	TerminalLabel string `json:"terminal_label"`
}

type encoderOutput struct {
	Success bool   `json:"success"`
	QR      string `json:"qr"`
	Message string `json:"message"`
}

// Encode runs the encoder command for one descriptor.
func (e *ExecEncoder) Encode(ctx context.Context, merchant domain.MerchantConfig, desc domain.TransactionDescriptor) (string, error) {
	if e.command == "" {
		return "", fmt.Errorf("no KHQR encoder command configured")
	}

	input, err := json.Marshal(encoderInput{
		BankAccount:   merchant.BankAccount,
		MerchantName:  merchant.MerchantName,
		MerchantCity:  merchant.MerchantCity,
		Amount:        desc.AmountString(),
		Currency:      string(desc.Currency),
		StoreLabel:    merchant.StoreLabel,
		BillNumber:    desc.BillNumber,
		PhoneNumber:   merchant.PhoneNumber,
		TerminalLabel: merchant.TerminalLabel,
	})
	if err != nil {
		return "", fmt.Errorf("marshal encoder input: %w", err)
	}

	args := append(append([]string{}, e.args...), "generate", string(input))
	cmd := exec.CommandContext(ctx, e.command, args...)

	out, err := cmd.Output()
	if err != nil {
		// Carry the subprocess's stderr: that is where a crashing encoder
		// leaves its diagnostic.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("encoder command failed: %w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("encoder command failed: %w", err)
	}

	var result encoderOutput
	if err := json.Unmarshal(out, &result); err != nil {
		return "", fmt.Errorf("malformed encoder output: %w", err)
	}
	if !result.Success {
		return "", fmt.Errorf("%s", result.Message)
	}
	if result.QR == "" {
		return "", fmt.Errorf("encoder returned empty payload")
	}
	return result.QR, nil
}
