package main

import (
	"fmt"
	"os"
	"path/filepath"

	"focusflow/internal/service"

	"github.com/spf13/cobra"
)

var generateKeyPair = service.GenerateKeyPair

func newKeygenCommand() *cobra.Command {
	var (
		out  string
		bits int
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key pair for signing tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bits < 2048 {
				return fmt.Errorf("無效的 bits: %d (至少 2048)", bits)
			}
			priv, pub, err := generateKeyPair(bits)
			if err != nil {
				return fmt.Errorf("產生金鑰失敗: %w", err)
			}
			if err := os.MkdirAll(out, 0o700); err != nil {
				return err
			}
			privPath := filepath.Join(out, "private.pem")
			pubPath := filepath.Join(out, "public.pem")
			if err := os.WriteFile(privPath, priv, 0o600); err != nil {
				return err
			}
			if err := os.WriteFile(pubPath, pub, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", privPath, pubPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "keys", "output directory")
	cmd.Flags().IntVar(&bits, "bits", 2048, "RSA key size")
	return cmd
}
