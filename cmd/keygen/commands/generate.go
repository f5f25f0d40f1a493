package commands

import (
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/keygen"
	"github.com/spf13/cobra"
)

func newGenerateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate key pairs",
		Args:  cobra.NoArgs,
		RunE:  c.generate,
	}
	addGenerateFlags(cmd)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("secret", "", "Derive the public key of this decimal secret instead of drawing one; count must be 1")
}

func (c *cli) generate(cmd *cobra.Command, args []string) error {
	curve, err := curves.Lookup(c.config.Curve)
	if err != nil {
		return err
	}
	gen := keygen.New(curve, keygen.WithLogger(c.config.Logger()))

	var pairs []*keygen.KeyPair
	secret, _ := cmd.Flags().GetString("secret")
	if secret != "" {
		if c.config.Count > 1 {
			return fmt.Errorf("--secret derives a single key pair, cannot combine with count %d",
				c.config.Count)
		}
		k, ok := new(big.Int).SetString(secret, 10)
		if !ok {
			return fmt.Errorf("invalid secret %q", secret)
		}
		kp, err := gen.FromSecret(k)
		if err != nil {
			return err
		}
		pairs = append(pairs, kp)
	} else {
		if pairs, err = gen.GenerateN(c.config.Count); err != nil {
			return err
		}
	}

	c.config.Logger().WithField("count", len(pairs)).Info("Generated key pairs")
	return writeKeyPairs(cmd.OutOrStdout(), c.config.Format, pairs)
}

func writeKeyPairs(w io.Writer, format string, pairs []*keygen.KeyPair) error {
	for i, kp := range pairs {
		switch format {
		case config.FormatJSON:
			data, err := kp.Marshal()
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
				return err
			}
		default:
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "secret key: %s\npublic key: %s\n",
				kp.Secret, kp.PublicString()); err != nil {
				return err
			}
		}
	}
	return nil
}
