package formance

import (
	"context"
	"fmt"
	"math/big"

	v3 "github.com/formancehq/formance-sdk-go/v3"
	"github.com/formancehq/formance-sdk-go/v3/pkg/models/operations"
	"github.com/formancehq/formance-sdk-go/v3/pkg/models/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const cashAccount = "dealership:cash"

// CashBalance returns the mirrored cash position of the dealership.
func (s *Service) CashBalance(ctx context.Context) (decimal.Decimal, error) {
	zap.L().Debug("Getting cash balance from Formance", zap.String("account", cashAccount))

	resp, err := s.client.Ledger.V2.GetAccount(ctx, operations.V2GetAccountRequest{
		Ledger:  s.ledger,
		Address: cashAccount,
		Expand:  v3.Pointer("volumes"),
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("error getting cash account: %w", err)
	}

	bal := volumeBalance(resp.V2AccountResponse.Data.Volumes, formanceAsset(s.currency))
	return fromMinorUnits(bal, s.currency), nil
}

// volumeBalance extracts the balance for a specific asset from volumes.
func volumeBalance(vols map[string]shared.V2Volume, fAsset string) *big.Int {
	vol, ok := vols[fAsset]
	if !ok {
		return nil
	}
	if vol.Balance != nil {
		return vol.Balance
	}
	if vol.Input == nil {
		return nil
	}
	result := new(big.Int).Set(vol.Input)
	if vol.Output != nil {
		result.Sub(result, vol.Output)
	}
	return result
}

// fromMinorUnits converts a *big.Int in minor units to a decimal amount.
func fromMinorUnits(raw *big.Int, currency string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -int32(precisionFor(currency)))
}
