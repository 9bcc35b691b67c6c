// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/snowfork/strkey/chain/stellar"
	"github.com/snowfork/strkey/crypto/ed25519"
	"github.com/snowfork/strkey/crypto/strkey"
	"github.com/spf13/viper"
)

const (
	PublicNetworkPassphrase = stellar.PublicNetworkPassphrase
	TestNetworkPassphrase   = stellar.TestNetworkPassphrase

	DefaultConcurrency = 8
	DefaultTemplate    = `kind:    {{kind}}
prefix:  {{prefix}}
version: {{version}}
length:  {{length}}
payload: {{payload}}
{{#muxed}}account: {{address}}
id:      {{id}}
{{/muxed}}{{#signedPayload}}signer:  {{signer}}
inner:   {{payload}}
{{/signedPayload}}`
)

type Config struct {
	Network  NetworkConfig  `mapstructure:"network"`
	Signer   SignerConfig   `mapstructure:"signer"`
	Verify   VerifyConfig   `mapstructure:"verify"`
	Output   OutputConfig   `mapstructure:"output"`
	Validate ValidateConfig `mapstructure:"validate"`
}

type NetworkConfig struct {
	// Passphrase the network id is derived from
	Passphrase string `mapstructure:"passphrase"`
}

func (c NetworkConfig) ID() stellar.NetworkID {
	return stellar.NewNetworkID(c.Passphrase)
}

type SignerConfig struct {
	// S... strkey or 0x-prefixed raw seed
	Seed string `mapstructure:"seed"`
	// File to read the seed from when Seed is empty
	SeedFile string `mapstructure:"seed-file"`
}

type VerifyConfig struct {
	// Signatures from keys outside this set are rejected. Empty means any key.
	TrustedSigners []PublicKey `mapstructure:"trusted-signers"`
}

type OutputConfig struct {
	// Mustache template used to render inspected strkeys
	Template string `mapstructure:"template"`
}

type ValidateConfig struct {
	// Maximum number of strkeys validated in parallel
	Concurrency int `mapstructure:"concurrency"`
}

// PublicKey is an ed25519 public key read from a G... strkey in the config.
type PublicKey [strkey.Ed25519Length]byte

func (pk PublicKey) String() string {
	return strkey.MustEncode(strkey.Ed25519PublicKey, pk[:])
}

// Keypair returns a verify-only keypair for pk.
func (pk PublicKey) Keypair() *ed25519.Keypair {
	kp, err := ed25519.FromRawPublicKey(pk[:])
	if err != nil {
		panic(err)
	}
	return kp
}

// IsTrusted reports whether address may sign. Every address is trusted when
// no trusted signers are configured.
func (c VerifyConfig) IsTrusted(address string) bool {
	if len(c.TrustedSigners) == 0 {
		return true
	}
	for _, pk := range c.TrustedSigners {
		if pk.String() == address {
			return true
		}
	}
	return false
}

// StringToPublicKeyHookFunc decodes G... strkeys into PublicKey values.
func StringToPublicKeyHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(PublicKey{}) {
			return data, nil
		}
		raw, err := strkey.Decode(strkey.Ed25519PublicKey, strings.TrimSpace(data.(string)))
		if err != nil {
			return nil, err
		}
		var pk PublicKey
		copy(pk[:], raw)
		return pk, nil
	}
}

// New returns a viper instance carrying the defaults and the STRKEY_ env
// prefix, e.g. STRKEY_SIGNER_SEED.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("network.passphrase", TestNetworkPassphrase)
	v.SetDefault("signer.seed", "")
	v.SetDefault("signer.seed-file", "")
	v.SetDefault("verify.trusted-signers", []string{})
	v.SetDefault("output.template", DefaultTemplate)
	v.SetDefault("validate.concurrency", DefaultConcurrency)

	v.SetEnvPrefix("strkey")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path into v, if set, and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var config Config
	err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		StringToPublicKeyHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Check(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Check reports settings that cannot work.
func (c *Config) Check() error {
	if c.Network.Passphrase == "" {
		return errors.New("network.passphrase must not be empty")
	}
	if c.Validate.Concurrency < 1 {
		return fmt.Errorf("validate.concurrency must be at least 1, got %d", c.Validate.Concurrency)
	}
	if c.Output.Template == "" {
		return errors.New("output.template must not be empty")
	}
	return nil
}
