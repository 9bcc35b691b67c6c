// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package cmd

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
	"github.com/snowfork/strkey/chain/stellar"
	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a secret seed",
		Args:  cobra.ExactArgs(0),
		RunE:  sign,
	}

	cmd.Flags().String("seed", "", "Secret seed, S... strkey or 0x-prefixed raw seed")
	cmd.Flags().String("seed-file", "", "The file from which to read the secret seed")
	addMessageFlags(cmd)
	return cmd
}

func sign(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"signer.seed":        "seed",
		"signer.seed-file":   "seed-file",
		"network.passphrase": "network-passphrase",
	})
	if err != nil {
		return err
	}

	keypair, err := stellar.ResolvePrivateKey(cfg.Signer.Seed, cfg.Signer.SeedFile)
	if err != nil {
		return err
	}

	message, transaction, err := readMessage(cmd)
	if err != nil {
		return err
	}

	var sig stellar.DecoratedSignature
	if transaction {
		sig, err = stellar.SignTransaction(keypair, cfg.Network.ID(), message)
	} else {
		sig, err = stellar.SignPayload(keypair, message)
	}
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"signer":      keypair.Address(),
		"transaction": transaction,
	}).Info("Signed message")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "signer:    %s\n", keypair.Address())
	fmt.Fprintf(out, "hint:      %s\n", hexutil.Encode(sig.Hint[:]))
	fmt.Fprintf(out, "signature: %s\n", sig.Base64())
	return nil
}

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a base64 signature against a public key",
		Args:  cobra.ExactArgs(0),
		RunE:  verify,
	}

	cmd.Flags().String("address", "", "G... address of the signer")
	cmd.Flags().String("signature", "", "Base64 encoded signature")
	cmd.MarkFlagRequired("address")
	cmd.MarkFlagRequired("signature")
	addMessageFlags(cmd)
	return cmd
}

func verify(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"network.passphrase": "network-passphrase",
	})
	if err != nil {
		return err
	}

	address, err := cmd.Flags().GetString("address")
	if err != nil {
		return err
	}
	encoded, err := cmd.Flags().GetString("signature")
	if err != nil {
		return err
	}
	sig, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}

	if !cfg.Verify.IsTrusted(address) {
		return fmt.Errorf("signer %s is not in verify.trusted-signers", address)
	}

	message, transaction, err := readMessage(cmd)
	if err != nil {
		return err
	}
	if transaction {
		hash := cfg.Network.ID().TransactionHash(message)
		message = hash[:]
	}

	if err := stellar.VerifyPayload(address, message, sig); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "signature is valid")
	return nil
}

func addMessageFlags(cmd *cobra.Command) {
	cmd.Flags().String("message", "", "Message to sign or verify")
	cmd.Flags().String("message-file", "", "The file from which to read the message")
	cmd.Flags().Bool("transaction", false, "Treat the message as an encoded transaction and use its network hash")
	cmd.Flags().String("network-passphrase", "", "Network passphrase, defaults to network.passphrase")
}

func readMessage(cmd *cobra.Command) ([]byte, bool, error) {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return nil, false, err
	}
	messageFile, err := cmd.Flags().GetString("message-file")
	if err != nil {
		return nil, false, err
	}
	transaction, err := cmd.Flags().GetBool("transaction")
	if err != nil {
		return nil, false, err
	}

	switch {
	case message != "" && messageFile != "":
		return nil, false, fmt.Errorf("--message and --message-file are mutually exclusive")
	case messageFile != "":
		content, err := os.ReadFile(messageFile)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load message: %w", err)
		}
		return content, transaction, nil
	case message != "":
		return []byte(message), transaction, nil
	default:
		return nil, false, fmt.Errorf("message not supplied")
	}
}
