// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
	"github.com/snowfork/strkey/crypto/ed25519"
	"github.com/snowfork/strkey/crypto/strkey"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random ed25519 keypairs",
		Args:  cobra.ExactArgs(0),
		RunE:  generate,
	}

	cmd.Flags().Int("count", 1, "Number of keypairs to generate")
	cmd.Flags().Bool("public-only", false, "Only print the public addresses")
	return cmd
}

func generate(cmd *cobra.Command, _ []string) error {
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	publicOnly, err := cmd.Flags().GetBool("public-only")
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		kp, err := ed25519.Random()
		if err != nil {
			return err
		}
		log.WithField("address", kp.Address()).Info("Generated keypair")

		if publicOnly {
			fmt.Fprintln(out, kp.Address())
			continue
		}
		seed, err := kp.SecretSeed()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", kp.Address(), seed)
	}
	return nil
}

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a raw hex payload as a strkey",
		Args:  cobra.ExactArgs(0),
		RunE:  encode,
	}

	cmd.Flags().String("kind", "", "Kind name or prefix letter, e.g. ed25519PublicKey or G")
	cmd.Flags().String("hex", "", "0x-prefixed payload")
	cmd.MarkFlagRequired("kind")
	cmd.MarkFlagRequired("hex")
	return cmd
}

func encode(cmd *cobra.Command, _ []string) error {
	kind, _, err := kindFlag(cmd)
	if err != nil {
		return err
	}
	hex, err := cmd.Flags().GetString("hex")
	if err != nil {
		return err
	}
	payload, err := hexutil.Decode(hex)
	if err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	text, err := strkey.Encode(kind, payload)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <strkey>",
		Short: "Decode a strkey into its hex payload",
		Args:  cobra.ExactArgs(1),
		RunE:  decode,
	}

	cmd.Flags().String("kind", "", "Expected kind; detected from the strkey when empty")
	return cmd
}

func decode(cmd *cobra.Command, args []string) error {
	kind, ok, err := kindFlag(cmd)
	if err != nil {
		return err
	}
	if !ok {
		kind, err = strkey.KindOf(args[0])
		if err != nil {
			return err
		}
	}

	payload, err := strkey.Decode(kind, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(payload))
	return nil
}

// kindFlag parses --kind, reporting false when the flag is empty.
func kindFlag(cmd *cobra.Command) (strkey.Kind, bool, error) {
	name, err := cmd.Flags().GetString("kind")
	if err != nil || name == "" {
		return 0, false, err
	}
	kind, err := strkey.ParseKind(name)
	if err != nil {
		return 0, false, err
	}
	return kind, true, nil
}
