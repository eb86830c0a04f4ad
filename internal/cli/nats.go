// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package cli provides shared utilities for CLI startup commands.
package cli

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	natsclient "github.com/osapi-io/nats-client/pkg/client"

	"github.com/lux-io/ledger/internal/config"
	"github.com/lux-io/ledger/internal/messaging"
)

// ParseStorageType maps "memory"/"file" strings to nats.StorageType.
func ParseStorageType(
	s string,
) nats.StorageType {
	if s == "memory" {
		return nats.MemoryStorage
	}

	return nats.FileStorage
}

// CloseNATSClient safely closes a NATS client connection.
func CloseNATSClient(
	nc messaging.NATSClient,
) {
	if natsConn, ok := nc.(*natsclient.Client); ok && natsConn.NC != nil {
		natsConn.NC.Close()
	}
}

// BuildNATSAuthOptions converts a config NATSAuth to natsclient.AuthOptions.
func BuildNATSAuthOptions(
	auth config.NATSAuth,
) natsclient.AuthOptions {
	switch auth.Type {
	case "user_pass":
		return natsclient.AuthOptions{
			AuthType: natsclient.UserPassAuth,
			Username: auth.Username,
			Password: auth.Password,
		}
	case "nkey":
		return natsclient.AuthOptions{
			AuthType: natsclient.NKeyAuth,
			NKeyFile: auth.NKeyFile,
		}
	default:
		return natsclient.AuthOptions{
			AuthType: natsclient.NoAuth,
		}
	}
}

// BuildStoreKVConfig builds a nats.KeyValueConfig for the entry store
// bucket from store config values.
func BuildStoreKVConfig(
	storeCfg config.Store,
) *nats.KeyValueConfig {
	ttl, _ := time.ParseDuration(storeCfg.TTL)

	return &nats.KeyValueConfig{
		Bucket:   storeCfg.Bucket,
		TTL:      ttl,
		MaxBytes: storeCfg.MaxBytes,
		Storage:  ParseStorageType(storeCfg.Storage),
		Replicas: storeCfg.Replicas,
	}
}

// BuildAuditKVConfig builds a nats.KeyValueConfig for the audit mirror
// bucket from audit config values.
func BuildAuditKVConfig(
	auditCfg config.Audit,
) *nats.KeyValueConfig {
	ttl, _ := time.ParseDuration(auditCfg.TTL)

	return &nats.KeyValueConfig{
		Bucket:   auditCfg.Bucket,
		TTL:      ttl,
		MaxBytes: auditCfg.MaxBytes,
		Storage:  ParseStorageType(auditCfg.Storage),
		Replicas: auditCfg.Replicas,
	}
}

// CreateKVBucketWithConfig creates (or binds to) a KV bucket using the
// full bucket configuration, which the plain CreateKVBucket helper does
// not carry.
func CreateKVBucketWithConfig(
	nc messaging.NATSClient,
	cfg *nats.KeyValueConfig,
) (nats.KeyValue, error) {
	natsConn, ok := nc.(*natsclient.Client)
	if !ok || natsConn.NC == nil {
		return nil, fmt.Errorf("nats client unavailable")
	}

	js, err := natsConn.NC.JetStream()
	if err != nil {
		return nil, fmt.Errorf("getting jetstream context: %w", err)
	}

	kv, err := js.CreateKeyValue(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating kv bucket %q: %w", cfg.Bucket, err)
	}

	return kv, nil
}
