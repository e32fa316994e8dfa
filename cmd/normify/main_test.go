package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Checker-Finance/normify/internal/translate"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "normalize",
			args:       []string{"normalize", "-exchange", "deribit", "-market", "o", "BTC-28MAR25-100000-C"},
			wantStdout: "o.o.BTC-USD-20250328-100000-C.deribit\n",
		},
		{
			name:       "denormalize",
			args:       []string{"denormalize", "o.p.BTC-USD.paradex"},
			wantStdout: "BTC-USD-PERP\n",
		},
		{
			name:       "parse",
			args:       []string{"parse", "o.o.ETH-USD-20250627-3000-P.deribit"},
			wantStdout: "exchange=deribit market_type=orderbook kind=option base=ETH quote=USD expiry=20250627 strike=3000 option_type=put\n",
		},
		{
			name:       "expired",
			args:       []string{"expired", "o.f.BTC-USD-20200327.deribit"},
			wantStdout: "true (20200327)\n",
		},
		{
			name:       "expired perpetual",
			args:       []string{"expired", "o.p.BTC-USD.deribit"},
			wantStdout: "false (no expiry)\n",
		},
		{
			name:       "rejected name",
			args:       []string{"normalize", "-exchange", "dydx", "-market", "o", "BTC-28MAR25-100000-C"},
			wantCode:   1,
			wantStderr: "rejected: ",
		},
		{
			name:       "invalid canonical",
			args:       []string{"denormalize", "garbage"},
			wantCode:   1,
			wantStderr: "invalid_format: ",
		},
		{name: "no args", args: nil, wantCode: 2, wantStderr: "usage:"},
		{name: "unknown command", args: []string{"frobnicate"}, wantCode: 2, wantStderr: "unknown command"},
		{name: "missing operand", args: []string{"parse"}, wantCode: 2, wantStderr: "usage:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			assert.Equal(t, tt.wantCode, code, stderr.String())
			if tt.wantStdout != "" {
				assert.Equal(t, tt.wantStdout, stdout.String())
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRun_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"denormalize", "-json", "t.p.SOL-USDC.aevo"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var resp translate.Response
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "SOL-PERP", resp.Name)
}

func TestRun_Venues(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"venues"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "deribit")
	assert.Contains(t, stdout.String(), "paradex  market_types=orderbook kinds=perpetual")
}
