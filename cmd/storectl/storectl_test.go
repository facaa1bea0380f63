package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/analytics"
)

func TestHashSecret_FromArg(t *testing.T) {
	var out bytes.Buffer
	cmd := newHashSecretCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"correct-horse"})
	require.NoError(t, cmd.Execute())

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct-horse")))
}

func TestHashSecret_FromStdin(t *testing.T) {
	var out bytes.Buffer
	cmd := newHashSecretCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("battery-staple\n"))
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("battery-staple")))
}

func TestHashSecret_TooShort(t *testing.T) {
	cmd := newHashSecretCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"short"})
	assert.Error(t, cmd.Execute())
}

func TestProfitReport_CostNeedsProduct(t *testing.T) {
	var out bytes.Buffer
	cmd := newProfitReportCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--cost", "70"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--cost requires --product")
	assert.Empty(t, out.String())
}

func TestProfitReportTemplate(t *testing.T) {
	res := analytics.ProfitResult{
		Mode:   analytics.ProfitModeAll,
		Window: analytics.WindowMonth,
		Lines: []analytics.ProfitLine{
			{Name: "Aurora Ring", QuantitySold: 4, Revenue: 1000, Profit: 640, Margin: 64},
		},
		TotalRevenue: 1000,
		TotalProfit:  640,
		Margin:       64,
		CalculatedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	var out bytes.Buffer
	require.NoError(t, profitReportTmpl.Execute(&out, res))
	s := out.String()
	assert.Contains(t, s, "Profit report (month) generated 2025-03-14 09:30")
	assert.Contains(t, s, "Aurora Ring")
	assert.Contains(t, s, "1000.00")
	assert.Contains(t, s, "margin  64.00%")
	assert.Contains(t, s, "Total revenue 1000.00  profit 640.00  margin 64.00%")
}
