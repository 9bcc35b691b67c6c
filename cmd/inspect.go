// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package cmd

import (
	"fmt"
	"strconv"

	"github.com/cbroglie/mustache"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
	"github.com/snowfork/strkey/crypto/strkey"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <strkey>",
		Short: "Show the kind, version byte and payload of a strkey",
		Args:  cobra.ExactArgs(1),
		RunE:  inspect,
	}

	cmd.Flags().String("template-file", "", "Mustache template overriding output.template")
	return cmd
}

func inspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	view, err := describe(args[0])
	if err != nil {
		return err
	}

	templateFile, err := cmd.Flags().GetString("template-file")
	if err != nil {
		return err
	}

	var rendered string
	if templateFile != "" {
		rendered, err = mustache.RenderFile(templateFile, view)
	} else {
		rendered, err = mustache.Render(cfg.Output.Template, view)
	}
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// describe decodes text into the values available to output templates.
func describe(text string) (map[string]interface{}, error) {
	kind, err := strkey.KindOf(text)
	if err != nil {
		return nil, err
	}
	payload, err := strkey.Decode(kind, text)
	if err != nil {
		return nil, err
	}

	view := map[string]interface{}{
		"text":          text,
		"kind":          kind.String(),
		"prefix":        string(kind.Prefix()),
		"version":       int(kind.VersionByte()),
		"length":        len(payload),
		"payload":       hexutil.Encode(payload),
		"muxed":         false,
		"signedPayload": false,
	}

	switch kind {
	case strkey.Med25519PublicKey:
		m, err := strkey.DecodeMuxedAccount(text)
		if err != nil {
			return nil, err
		}
		view["muxed"] = map[string]interface{}{
			"address": m.Address(),
			"id":      strconv.FormatUint(m.ID, 10),
		}
	case strkey.SignedPayload:
		sp, err := strkey.DecodeSignedPayload(text)
		if err != nil {
			return nil, err
		}
		view["signedPayload"] = map[string]interface{}{
			"signer":  sp.Signer(),
			"payload": hexutil.Encode(sp.Payload),
		}
	}

	log.WithFields(log.Fields{
		"kind":   kind,
		"length": len(payload),
	}).Debug("Inspected strkey")

	return view, nil
}
