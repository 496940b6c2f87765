// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ava-labs/tenk-cli/cmd/flags"
	"github.com/ava-labs/tenk-cli/pkg/clierrors"
	"github.com/ava-labs/tenk-cli/pkg/cobrautils"
	"github.com/ava-labs/tenk-cli/pkg/constants"
	"github.com/ava-labs/tenk-cli/pkg/contract"
	"github.com/ava-labs/tenk-cli/pkg/models"
	"github.com/ava-labs/tenk-cli/pkg/near"
	"github.com/ava-labs/tenk-cli/pkg/nft"
	"github.com/ava-labs/tenk-cli/pkg/utils"
	"github.com/ava-labs/tenk-cli/pkg/ux"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type DeployFlags struct {
	Signer   contract.SignerFlags
	WasmPath string
	NodeURL  string
	DryRun   bool
	Format   string
	Timeout  time.Duration
}

var deployFlags DeployFlags

// tenk contract deploy
func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [contractID]",
		Short: "Deploy the TenK collection contract",
		Long: `The contract deploy command uploads the compiled collection contract to
contractID, or to the signer account when no contractID is given.

When the account already runs a contract, the same transaction also calls
new_default_meta with the collection metadata and sale terms. Accounts ending
in "testnet" are deployed without initial royalties and with the public sale
starting immediately.`,
		RunE: deploy,
		Args: cobrautils.MaximumNArgs(1),
	}
	deployFlags.Signer.AddToCmd(cmd, "sign the deployment")
	cmd.Flags().StringVar(&deployFlags.WasmPath, "wasm", "", fmt.Sprintf("contract binary to deploy (default %s)", constants.DefaultWasmPath))
	flags.AddNodeURLFlagToCmd(cmd, &deployFlags.NodeURL)
	cmd.Flags().BoolVar(&deployFlags.DryRun, "dry-run", false, "print the planned transaction without signing or sending it")
	cmd.Flags().StringVar(&deployFlags.Format, "format", constants.DryRunFormatJSON, "dry run output format [json, yaml]")
	cmd.Flags().DurationVar(&deployFlags.Timeout, "timeout", constants.DefaultRPCTimeout, "timeout for the whole deployment")
	return cmd
}

func deploy(cmd *cobra.Command, args []string) error {
	contractID := ""
	if len(args) == 1 {
		contractID = args[0]
	}
	return CallDeploy(cmd.Context(), contractID, deployFlags)
}

func CallDeploy(ctx context.Context, contractID string, flags DeployFlags) error {
	if flags.DryRun && flags.Format != constants.DryRunFormatJSON && flags.Format != constants.DryRunFormatYAML {
		return fmt.Errorf("%w: %q", clierrors.ErrInvalidFormat, flags.Format)
	}

	candidates := []models.Network{models.Mainnet, models.Testnet}
	if contractID != "" {
		candidates = []models.Network{models.NetworkFromAccount(contractID)}
	}
	signerID, err := flags.Signer.GetAccountID(app, candidates...)
	if err != nil {
		return err
	}
	target := contractID
	if target == "" {
		target = signerID
	}
	network := models.NetworkFromAccount(target)

	nodeURL := flags.NodeURL
	if nodeURL == "" {
		nodeURL = app.GetNodeURL(network)
	}
	client := near.NewClient(nodeURL, flags.Timeout)

	var signer contract.Signer = contract.PlanningSigner(signerID)
	if !flags.DryRun {
		key, err := flags.Signer.GetKeyPair(app, network, signerID)
		if err != nil {
			return err
		}
		signer = near.NewAccount(signerID, key, client, app.Log)
	}

	wasmPath := flags.WasmPath
	if wasmPath == "" {
		wasmPath = app.GetWasmPath()
	}
	wasmPath = utils.ExpandHome(wasmPath)

	ctx, cancel := utils.GetRPCContext(ctx, flags.Timeout)
	defer cancel()

	deployer := contract.NewDeployer(app.FS, client, signer, app.Log)
	plan, err := deployer.Plan(ctx, contract.DeployRequest{
		ContractID: target,
		WasmPath:   wasmPath,
	})
	if err != nil {
		return err
	}

	if flags.DryRun {
		out, err := plan.Render(flags.Format)
		if err != nil {
			return err
		}
		ux.Logger.PrintToUser("%s", strings.TrimSuffix(string(out), "\n"))
		return nil
	}

	if plan.WillInitialize() {
		initJSON, err := json.MarshalIndent(plan.InitArgs, "", "  ")
		if err != nil {
			return err
		}
		ux.Logger.PrintToUser("initializing with: \n%s", initJSON)
		printSaleSummary(plan.InitArgs.Sale)
	}

	spinner := ux.NewUserSpinner()
	sp := spinner.SpinToUser("Deploying %s on %s", plan.ContractID, plan.Network)
	res, err := deployer.Submit(ctx, plan)
	if err != nil {
		ux.SpinFailWithError(sp, "", err)
		spinner.Stop()
		return err
	}
	ux.SpinComplete(sp)
	spinner.Stop()

	ux.Logger.PrintToUser("%s", res.ExplorerURL)
	if res.Deployed() {
		ux.Logger.PrintToUser("deployed %s", res.ContractID)
		ux.Logger.Info("gas burnt: %s", ux.ConvertToStringWithThousandSeparator(uint64(res.Outcome.TotalGasBurnt())))
		return nil
	}
	raw, err := json.MarshalIndent(res.Outcome, "", "  ")
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("%s", raw)
	return nil
}

func printSaleSummary(sale nft.Sale) {
	t := ux.KeyValueTable("Sale")
	price, err := near.ParseYocto(sale.Price)
	if err == nil {
		t.AppendRow(table.Row{"Price", near.FormatNEAR(price)})
	}
	if sale.Allowance != nil {
		t.AppendRow(table.Row{"Allowance", *sale.Allowance})
	}
	if sale.PublicSaleStart != nil {
		start := time.UnixMilli(int64(*sale.PublicSaleStart)).UTC()
		t.AppendRow(table.Row{"Public sale start", start.Format(time.RFC1123)})
	}
	t.AppendRow(table.Row{"Initial royalties", formatRoyalties(sale.InitialRoyalties)})
	t.AppendRow(table.Row{"Royalties", formatRoyalties(sale.Royalties)})
	ux.Logger.PrintToUser("%s", t.Render())
}

func formatRoyalties(r *nft.Royalties) string {
	if r == nil {
		return "none"
	}
	lines := []string{fmt.Sprintf("%.2f%%", float64(r.Percent)/100)}
	for _, account := range r.SortedAccounts() {
		lines = append(lines, fmt.Sprintf("%s: %.2f%%", account, float64(r.Accounts[account])/100))
	}
	return strings.Join(lines, "\n")
}
