package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/keygen"
	"github.com/spf13/cobra"
)

func newVerifyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [file]",
		Short: "Check a JSON key pair, read from file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.verify,
	}
}

func (c *cli) verify(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	var kp keygen.KeyPair
	if err := kp.Unmarshal(data); err != nil {
		return fmt.Errorf("failed to decode key pair: %w", err)
	}
	curve, err := curves.Lookup(kp.Curve)
	if err != nil {
		return err
	}
	if err := keygen.New(curve, keygen.WithLogger(c.config.Logger())).Verify(&kp); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", kp.PublicString())
	return nil
}
