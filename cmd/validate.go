// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/snowfork/strkey/crypto/strkey"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [strkey...]",
		Short: "Check many strkeys at once",
		RunE:  validate,
	}

	cmd.Flags().String("kind", "", "Required kind; detected per strkey when empty")
	cmd.Flags().String("file", "", "File with one strkey per line")
	cmd.Flags().Int("concurrency", 0, "Maximum parallel checks, defaults to validate.concurrency")
	return cmd
}

type validation struct {
	text string
	kind strkey.Kind
	err  error
}

func validate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"validate.concurrency": "concurrency",
	})
	if err != nil {
		return err
	}

	kind, fixed, err := kindFlag(cmd)
	if err != nil {
		return err
	}

	inputs := append([]string{}, args...)
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	if file != "" {
		lines, err := readLines(file)
		if err != nil {
			return err
		}
		inputs = append(inputs, lines...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no strkeys supplied")
	}

	results := make([]validation, len(inputs))

	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(cfg.Validate.Concurrency)
	for i, text := range inputs {
		i, text := i, text
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = check(text, kind, fixed)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	invalid := 0
	for _, r := range results {
		if r.err != nil {
			invalid++
			fmt.Fprintf(out, "INVALID %s: %v\n", r.text, r.err)
			continue
		}
		fmt.Fprintf(out, "VALID   %s %s\n", r.text, r.kind)
	}

	log.WithFields(log.Fields{
		"total":       len(results),
		"invalid":     invalid,
		"concurrency": cfg.Validate.Concurrency,
	}).Info("Validated strkeys")

	if invalid > 0 {
		return fmt.Errorf("%d of %d strkeys are invalid", invalid, len(results))
	}
	return nil
}

// check fully decodes text, including the inner structure of muxed accounts
// and signed payloads.
func check(text string, kind strkey.Kind, fixed bool) validation {
	r := validation{text: text, kind: kind}
	if !fixed {
		r.kind, r.err = strkey.KindOf(text)
		if r.err != nil {
			return r
		}
	}

	switch r.kind {
	case strkey.Med25519PublicKey:
		_, r.err = strkey.DecodeMuxedAccount(text)
	case strkey.SignedPayload:
		_, r.err = strkey.DecodeSignedPayload(text)
	default:
		_, r.err = strkey.Decode(r.kind, text)
	}
	return r
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
